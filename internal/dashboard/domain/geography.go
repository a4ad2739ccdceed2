package domain

import (
	"fmt"
	"strings"
)

// Province is one of the nine administrative provinces
type Province string

const (
	ProvinceNorthern     Province = "NORTHERN"
	ProvinceNorthWestern Province = "NORTH_WESTERN"
	ProvinceWestern      Province = "WESTERN"
	ProvinceNorthCentral Province = "NORTH_CENTRAL"
	ProvinceCentral      Province = "CENTRAL"
	ProvinceSabaragamuwa Province = "SABARAGAMUWA"
	ProvinceEastern      Province = "EASTERN"
	ProvinceUva          Province = "UVA"
	ProvinceSouthern     Province = "SOUTHERN"
)

// AllProvinces lists provinces in declaration order
var AllProvinces = []Province{
	ProvinceNorthern,
	ProvinceNorthWestern,
	ProvinceWestern,
	ProvinceNorthCentral,
	ProvinceCentral,
	ProvinceSabaragamuwa,
	ProvinceEastern,
	ProvinceUva,
	ProvinceSouthern,
}

var provinceNames = map[Province]string{
	ProvinceNorthern:     "Northern Province",
	ProvinceNorthWestern: "North-Western Province",
	ProvinceWestern:      "Western Province",
	ProvinceNorthCentral: "North-Central Province",
	ProvinceCentral:      "Central Province",
	ProvinceSabaragamuwa: "Sabaragamuwa Province",
	ProvinceEastern:      "Eastern Province",
	ProvinceUva:          "Uva Province",
	ProvinceSouthern:     "Southern Province",
}

// DisplayName returns the human readable province name
func (p Province) DisplayName() string {
	name, ok := provinceNames[p]
	if !ok {
		panic(fmt.Sprintf("domain: unknown province %q", string(p)))
	}
	return name
}

// Valid reports whether p is a declared province
func (p Province) Valid() bool {
	_, ok := provinceNames[p]
	return ok
}

// Districts returns the districts of p in enumeration order
func (p Province) Districts() []District {
	var out []District
	for _, d := range AllDistricts {
		if d.Province() == p {
			out = append(out, d)
		}
	}
	return out
}

// ParseProvince parses a province code case-insensitively
func ParseProvince(value string) (Province, error) {
	p := Province(strings.ToUpper(strings.TrimSpace(value)))
	if !p.Valid() {
		return "", NewValidationError("province", value, "unknown province")
	}
	return p, nil
}

// District is one of the 25 administrative districts. Each belongs to exactly one province.
type District string

const (
	DistrictJaffna       District = "JAFFNA"
	DistrictKilinochchi  District = "KILINOCHCHI"
	DistrictMannar       District = "MANNAR"
	DistrictMullaitivu   District = "MULLAITIVU"
	DistrictVavuniya     District = "VAVUNIYA"
	DistrictPuttalam     District = "PUTTALAM"
	DistrictKurunegala   District = "KURUNEGALA"
	DistrictGampaha      District = "GAMPAHA"
	DistrictColombo      District = "COLOMBO"
	DistrictKalutara     District = "KALUTARA"
	DistrictAnuradhapura District = "ANURADHAPURA"
	DistrictPolonnaruwa  District = "POLONNARUWA"
	DistrictMatale       District = "MATALE"
	DistrictKandy        District = "KANDY"
	DistrictNuwaraEliya  District = "NUWARA_ELIYA"
	DistrictKegalle      District = "KEGALLE"
	DistrictRatnapura    District = "RATNAPURA"
	DistrictTrincomalee  District = "TRINCOMALEE"
	DistrictBatticaloa   District = "BATTICALOA"
	DistrictAmpara       District = "AMPARA"
	DistrictBadulla      District = "BADULLA"
	DistrictMonaragala   District = "MONARAGALA"
	DistrictHambantota   District = "HAMBANTOTA"
	DistrictMatara       District = "MATARA"
	DistrictGalle        District = "GALLE"
)

type districtInfo struct {
	province    Province
	displayName string
}

// AllDistricts lists districts in enumeration order, grouped by province
var AllDistricts = []District{
	DistrictJaffna, DistrictKilinochchi, DistrictMannar, DistrictMullaitivu, DistrictVavuniya,
	DistrictPuttalam, DistrictKurunegala,
	DistrictGampaha, DistrictColombo, DistrictKalutara,
	DistrictAnuradhapura, DistrictPolonnaruwa,
	DistrictMatale, DistrictKandy, DistrictNuwaraEliya,
	DistrictKegalle, DistrictRatnapura,
	DistrictTrincomalee, DistrictBatticaloa, DistrictAmpara,
	DistrictBadulla, DistrictMonaragala,
	DistrictHambantota, DistrictMatara, DistrictGalle,
}

var districts = map[District]districtInfo{
	DistrictJaffna:       {ProvinceNorthern, "Jaffna"},
	DistrictKilinochchi:  {ProvinceNorthern, "Kilinochchi"},
	DistrictMannar:       {ProvinceNorthern, "Mannar"},
	DistrictMullaitivu:   {ProvinceNorthern, "Mullaitivu"},
	DistrictVavuniya:     {ProvinceNorthern, "Vavuniya"},
	DistrictPuttalam:     {ProvinceNorthWestern, "Puttalam"},
	DistrictKurunegala:   {ProvinceNorthWestern, "Kurunegala"},
	DistrictGampaha:      {ProvinceWestern, "Gampaha"},
	DistrictColombo:      {ProvinceWestern, "Colombo"},
	DistrictKalutara:     {ProvinceWestern, "Kalutara"},
	DistrictAnuradhapura: {ProvinceNorthCentral, "Anuradhapura"},
	DistrictPolonnaruwa:  {ProvinceNorthCentral, "Polonnaruwa"},
	DistrictMatale:       {ProvinceCentral, "Matale"},
	DistrictKandy:        {ProvinceCentral, "Kandy"},
	DistrictNuwaraEliya:  {ProvinceCentral, "Nuwara Eliya"},
	DistrictKegalle:      {ProvinceSabaragamuwa, "Kegalle"},
	DistrictRatnapura:    {ProvinceSabaragamuwa, "Ratnapura"},
	DistrictTrincomalee:  {ProvinceEastern, "Trincomalee"},
	DistrictBatticaloa:   {ProvinceEastern, "Batticaloa"},
	DistrictAmpara:       {ProvinceEastern, "Ampara"},
	DistrictBadulla:      {ProvinceUva, "Badulla"},
	DistrictMonaragala:   {ProvinceUva, "Monaragala"},
	DistrictHambantota:   {ProvinceSouthern, "Hambantota"},
	DistrictMatara:       {ProvinceSouthern, "Matara"},
	DistrictGalle:        {ProvinceSouthern, "Galle"},
}

func (d District) info() districtInfo {
	info, ok := districts[d]
	if !ok {
		panic(fmt.Sprintf("domain: unknown district %q", string(d)))
	}
	return info
}

// DisplayName returns the human readable district name
func (d District) DisplayName() string {
	return d.info().displayName
}

// Province returns the province that owns d
func (d District) Province() Province {
	return d.info().province
}

// Valid reports whether d is a declared district
func (d District) Valid() bool {
	_, ok := districts[d]
	return ok
}

// ParseDistrict parses a district code case-insensitively
func ParseDistrict(value string) (District, error) {
	d := District(strings.ToUpper(strings.TrimSpace(value)))
	if !d.Valid() {
		return "", NewValidationError("district", value, "unknown district")
	}
	return d, nil
}
