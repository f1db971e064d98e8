package dto

// ================== Division && ContactUs DTO ==================

// DivisionReq 新增/修改事业部
type DivisionReq struct {
	DivisionName string    `json:"division_name" binding:"required,max=150" msg:"required=Please enter division name."`
	Slug         string    `json:"slug" binding:"required,max=150" msg:"required=Please enter slug."`
	IsActive     *FlexBool `json:"is_active"`
}

func (r *DivisionReq) Active() bool {
	return r.IsActive != nil && bool(*r.IsActive)
}

// DivisionOption 事业部下拉选项
type DivisionOption struct {
	UUID         string `json:"uuid"`
	DivisionName string `json:"division_name"`
	Slug         string `json:"slug"`
}

// CreateContactUsReq 联系我们
type CreateContactUsReq struct {
	BusinessEmail string    `json:"business_email" binding:"required,email" msg:"required=Please enter business email.;email=Please enter valid business email."`
	Name          string    `json:"name" binding:"required,max=150" msg:"required=Please enter name."`
	Message       string    `json:"message" binding:"required" msg:"required=Please enter your message."`
	IsActive      *FlexBool `json:"is_active"`
}
