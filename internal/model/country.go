package model

// Country 国家
type Country struct {
	BaseModel
	CountryName  string `gorm:"size:100;not null;index" json:"country_name"`
	IsoCode      string `gorm:"size:10;not null;uniqueIndex" json:"iso_code"`
	MobileCode   int    `gorm:"not null;default:0" json:"mobile_code"`
	CurrencyCode string `gorm:"size:10" json:"currency_code"`

	States []State `gorm:"foreignKey:CountryID" json:"-"`
}

func (Country) TableName() string {
	return "countries"
}

// State 省/州
type State struct {
	BaseModel
	CountryID int64    `gorm:"not null;uniqueIndex:idx_country_state_name" json:"country_id"`
	Country   *Country `gorm:"foreignKey:CountryID" json:"country,omitempty"`
	StateName string   `gorm:"size:100;not null;uniqueIndex:idx_country_state_name" json:"state_name"`
	ShortCode string   `gorm:"size:10" json:"short_code"`

	Cities []City `gorm:"foreignKey:StateID" json:"-"`
}

func (State) TableName() string {
	return "states"
}

// City 城市，同一省份下城市名唯一
type City struct {
	BaseModel
	StateID  int64  `gorm:"not null;uniqueIndex:idx_state_city_name" json:"state_id"`
	State    *State `gorm:"foreignKey:StateID" json:"state,omitempty"`
	CityName string `gorm:"size:100;not null;uniqueIndex:idx_state_city_name" json:"city_name"`
}

func (City) TableName() string {
	return "cities"
}
