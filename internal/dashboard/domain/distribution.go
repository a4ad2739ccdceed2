package domain

import (
	"bytes"
	"encoding/json"
)

// DistrictCount is one row of a grouped district count
type DistrictCount struct {
	District District
	Count    int64
}

// ProvinceCount is one row of a grouped province count
type ProvinceCount struct {
	Province Province
	Count    int64
}

// FarmTypeCount is the number of farms registered under one farm type
type FarmTypeCount struct {
	TypeName string
	Count    int64
}

// DistrictBreakdown maps district display names to counts and keeps insertion order
type DistrictBreakdown struct {
	names  []string
	counts map[string]int64
}

// Set inserts or replaces a district count. New names are appended.
func (b *DistrictBreakdown) Set(name string, count int64) {
	if b.counts == nil {
		b.counts = make(map[string]int64)
	}
	if _, ok := b.counts[name]; !ok {
		b.names = append(b.names, name)
	}
	b.counts[name] = count
}

// Get returns the count recorded for name
func (b DistrictBreakdown) Get(name string) (int64, bool) {
	c, ok := b.counts[name]
	return c, ok
}

// Names returns district names in insertion order
func (b DistrictBreakdown) Names() []string {
	return append([]string(nil), b.names...)
}

// Len returns the number of districts recorded
func (b DistrictBreakdown) Len() int {
	return len(b.names)
}

// Total sums every recorded district count
func (b DistrictBreakdown) Total() int64 {
	var total int64
	for _, c := range b.counts {
		total += c
	}
	return total
}

// MarshalJSON writes a JSON object whose keys follow insertion order
func (b DistrictBreakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range b.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(b.counts[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ProvinceDistribution is the active user count of one province with its district breakdown.
// Users without a district count towards UserCount but not towards the breakdown.
type ProvinceDistribution struct {
	Province          Province          `json:"province"`
	DisplayName       string            `json:"displayName"`
	UserCount         int64             `json:"userCount"`
	DistrictBreakdown DistrictBreakdown `json:"districtBreakdown"`
}

// DistrictDistribution is the active user count of one district
type DistrictDistribution struct {
	District    District `json:"district"`
	DisplayName string   `json:"displayName"`
	UserCount   int64    `json:"userCount"`
}
