package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FarmType is a configuration entity classifying farms
type FarmType struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TypeName    string    `json:"type_name" gorm:"uniqueIndex;not null;size:50"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (FarmType) TableName() string { return "farm_types" }

// AnimalType is a configuration entity classifying animals
type AnimalType struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TypeName    string    `json:"type_name" gorm:"uniqueIndex;not null;size:50"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (AnimalType) TableName() string { return "animal_types" }

// Disease is a configuration entity describing a disease definition
type Disease struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	DiseaseName  string    `json:"disease_name" gorm:"uniqueIndex;not null;size:100"`
	DiseaseCode  string    `json:"disease_code" gorm:"size:20"`
	Description  string    `json:"description"`
	Severity     Severity  `json:"severity" gorm:"type:varchar(20);index"`
	IsNotifiable bool      `json:"is_notifiable" gorm:"not null"`
	IsActive     bool      `json:"is_active" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Disease) TableName() string { return "diseases" }

// Farm is a registered farm
type Farm struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FarmName   string    `json:"farm_name" gorm:"not null;size:100"`
	FarmTypeID uuid.UUID `json:"farm_type_id" gorm:"type:uuid;not null;index"`
	FarmType   FarmType  `json:"-"`
	OwnerName  string    `json:"owner_name" gorm:"not null"`
	District   string    `json:"district" gorm:"not null;size:50"`
	Province   string    `json:"province" gorm:"not null;size:50"`
	IsActive   bool      `json:"is_active" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Farm) TableName() string { return "farms" }

// Animal is an animal registered on a farm
type Animal struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FarmID       uuid.UUID `json:"farm_id" gorm:"type:uuid;not null;index"`
	AnimalTypeID uuid.UUID `json:"animal_type_id" gorm:"type:uuid;not null"`
	TagNumber    string    `json:"tag_number" gorm:"size:50"`
	IsActive     bool      `json:"is_active" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Animal) TableName() string { return "animals" }

// DiseaseReport records a suspected or confirmed disease case
type DiseaseReport struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AnimalID    uuid.UUID `json:"animal_id" gorm:"type:uuid;not null"`
	DiseaseID   uuid.UUID `json:"disease_id" gorm:"type:uuid;not null"`
	FarmID      uuid.UUID `json:"farm_id" gorm:"type:uuid;not null"`
	ReportedBy  uint      `json:"reported_by" gorm:"not null"`
	ReportDate  time.Time `json:"report_date" gorm:"type:date;not null"`
	IsConfirmed bool      `json:"is_confirmed" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (DiseaseReport) TableName() string { return "disease_reports" }

// assignID fills a missing primary key before insert
func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

// BeforeCreate assigns a primary key
func (f *FarmType) BeforeCreate(*gorm.DB) error {
	assignID(&f.ID)
	return nil
}

// BeforeCreate assigns a primary key
func (a *AnimalType) BeforeCreate(*gorm.DB) error {
	assignID(&a.ID)
	return nil
}

// BeforeCreate assigns a primary key
func (d *Disease) BeforeCreate(*gorm.DB) error {
	assignID(&d.ID)
	return nil
}

// BeforeCreate assigns a primary key
func (f *Farm) BeforeCreate(*gorm.DB) error {
	assignID(&f.ID)
	return nil
}

// BeforeCreate assigns a primary key
func (a *Animal) BeforeCreate(*gorm.DB) error {
	assignID(&a.ID)
	return nil
}

// BeforeCreate assigns a primary key
func (r *DiseaseReport) BeforeCreate(*gorm.DB) error {
	assignID(&r.ID)
	return nil
}

// Models lists every persisted entity, in dependency order
func Models() []interface{} {
	return []interface{}{
		&User{},
		&FarmType{},
		&AnimalType{},
		&Disease{},
		&Farm{},
		&Animal{},
		&DiseaseReport{},
	}
}
