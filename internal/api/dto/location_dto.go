package dto

// ================== State && City DTO ==================

// StateReq 新增/修改省份
type StateReq struct {
	CountryUUID string    `json:"country_uuid" binding:"required" msg:"required=Please enter country uuid."`
	Name        string    `json:"name" binding:"required,alpha_space,max=100" msg:"required=Please enter state name.;alpha_space=Name must contain only alphabetic characters."`
	ShortCode   string    `json:"short_code" binding:"required,alpha_space,max=10" msg:"required=Please enter short code.;alpha_space=Short code must contain only alphabetic characters."`
	IsActive    *FlexBool `json:"is_active"`
}

// Active is_active 缺省为 false
func (r *StateReq) Active() bool {
	return r.IsActive != nil && bool(*r.IsActive)
}

// StateDropdownReq 省份下拉，可按国家过滤
type StateDropdownReq struct {
	CountryUUID string `json:"country_uuid"`
}

// StateOption 省份下拉选项
type StateOption struct {
	UUID      string `json:"uuid"`
	StateName string `json:"state_name"`
}

// CityReq 新增/修改城市
type CityReq struct {
	StateUUID string    `json:"state_uuid" binding:"required" msg:"required=Please enter state uuid."`
	Name      string    `json:"name" binding:"required,alpha_space_dash,max=100" msg:"required=Please enter city name.;alpha_space_dash=Name must contain only alphabetic characters."`
	IsActive  *FlexBool `json:"is_active"`
}

func (r *CityReq) Active() bool {
	return r.IsActive != nil && bool(*r.IsActive)
}

// CityDropdownReq 城市下拉，可按省份过滤
type CityDropdownReq struct {
	StateUUID string `json:"state_uuid"`
}

// CityOption 城市下拉选项
type CityOption struct {
	UUID     string `json:"uuid"`
	CityName string `json:"city_name"`
}
