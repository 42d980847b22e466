package models

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6,numeric"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required,len=6,numeric"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type ResendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin"`
}

type UpdateUserStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type CreateCategoryRequest struct {
	NameEn        string `json:"name" binding:"required,min=2,max=50"`
	NameAr        string `json:"name_ar" binding:"required,min=2,max=50"`
	DescriptionEn string `json:"description" binding:"omitempty,max=500"`
	DescriptionAr string `json:"description_ar" binding:"omitempty,max=500"`
	SortOrder     int    `json:"sort_order" binding:"omitempty,min=0"`
}

type UpdateCategoryRequest struct {
	NameEn        *string `json:"name" binding:"omitempty,min=2,max=50"`
	NameAr        *string `json:"name_ar" binding:"omitempty,min=2,max=50"`
	DescriptionEn *string `json:"description" binding:"omitempty,max=500"`
	DescriptionAr *string `json:"description_ar" binding:"omitempty,max=500"`
	SortOrder     *int    `json:"sort_order" binding:"omitempty,min=0"`
	IsActive      *bool   `json:"is_active"`
}

type CreateProductRequest struct {
	NameEn         string  `json:"name" binding:"required,max=100"`
	NameAr         string  `json:"name_ar" binding:"omitempty,max=100"`
	DescriptionEn  string  `json:"description" binding:"omitempty,max=1000"`
	DescriptionAr  string  `json:"description_ar" binding:"omitempty,max=1000"`
	BrandEn        string  `json:"brand" binding:"omitempty,max=50"`
	BrandAr        string  `json:"brand_ar" binding:"omitempty,max=50"`
	Price          float64 `json:"price" binding:"required,min=0"`
	Stock          int     `json:"stock" binding:"min=0"`
	SKU            string  `json:"sku" binding:"omitempty,uppercase"`
	CategoryID     int     `json:"category_id" binding:"required"`
	ProductionDate string  `json:"production_date" binding:"omitempty"`
	ExpiryDate     string  `json:"expiry_date" binding:"omitempty"`
}

type UpdateProductRequest struct {
	NameEn        *string  `json:"name" binding:"omitempty,max=100"`
	NameAr        *string  `json:"name_ar" binding:"omitempty,max=100"`
	DescriptionEn *string  `json:"description" binding:"omitempty,max=1000"`
	DescriptionAr *string  `json:"description_ar" binding:"omitempty,max=1000"`
	BrandEn       *string  `json:"brand" binding:"omitempty,max=50"`
	BrandAr       *string  `json:"brand_ar" binding:"omitempty,max=50"`
	Price         *float64 `json:"price" binding:"omitempty,min=0"`
	CategoryID    *int     `json:"category_id"`
	IsActive      *bool    `json:"is_active"`
}

type AdjustStockRequest struct {
	Stock     int    `json:"stock" binding:"min=0"`
	Operation string `json:"operation" binding:"omitempty,oneof=add subtract set"`
}

type OrderItemRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	ShippingAddress ShippingAddress    `json:"shipping_address" binding:"required"`
	PaymentMethod   string             `json:"payment_method" binding:"omitempty,oneof=credit_card debit_card paypal cash_on_delivery"`
	Notes           string             `json:"notes" binding:"omitempty,max=500"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type Response struct {
	Success bool        `json:"success"`
	Message interface{} `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool        `json:"success"`
	Code    string      `json:"code,omitempty"`
	Message interface{} `json:"message"`
}

type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type PaginatedResponse struct {
	Success bool           `json:"success"`
	Message interface{}    `json:"message,omitempty"`
	Data    interface{}    `json:"data"`
	Meta    PaginationMeta `json:"meta"`
}
