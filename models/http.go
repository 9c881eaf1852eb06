package models

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Username string `json:"username" validate:"required,max=255" msg:"Username is required"`
	Email    string `json:"email" validate:"required,email,max=255" msg:"Invalid email address"`
	Password string `json:"password" validate:"min=6,max=72" msg:"Password must be at least 6 characters long"`
	Role     string `json:"role" validate:"oneof=buyer seller" msg:"Role must be buyer or seller"`
}

// SignupResponse is returned by POST /auth/signup.
type SignupResponse struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" msg:"Invalid email address"`
	Password string `json:"password" validate:"required" msg:"Password is required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// ProductCreateRequest is the body of POST /seller/add-product.
type ProductCreateRequest struct {
	Name        string  `json:"name" validate:"required,max=255" msg:"Name is required"`
	Category    string  `json:"category" validate:"required,max=255" msg:"Category is required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gt=0" msg:"Price must be a positive number"`
	Discount    float64 `json:"discount" validate:"gte=0,lte=100" msg:"Discount must be between 0 and 100"`
}

// ProductUpdateRequest is the body of PUT /seller/edit-product/{id}.
// Nil fields are left unchanged.
type ProductUpdateRequest struct {
	Name        *string  `json:"name" validate:"omitnil,min=1,max=255" msg:"Invalid name"`
	Category    *string  `json:"category" validate:"omitnil,min=1,max=255" msg:"Invalid category"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitnil,gt=0" msg:"Price must be a positive number"`
	Discount    *float64 `json:"discount" validate:"omitnil,gte=0,lte=100" msg:"Discount must be between 0 and 100"`
}

// IsEmpty reports whether the request changes nothing.
func (r ProductUpdateRequest) IsEmpty() bool {
	return r.Name == nil && r.Category == nil && r.Description == nil && r.Price == nil && r.Discount == nil
}

// AddToCartRequest is the body of POST /buyer/add-to-cart.
type AddToCartRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0" msg:"Product ID must be an integer"`
}

// MessageResponse is the {"message": "..."} body used by the gate, the role
// policy and success/not-found replies of the seller and buyer routes.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the {"error": "..."} body used for operation failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldError describes one failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the {"errors": [...]} body returned on 400.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}
