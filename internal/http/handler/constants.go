package handler

const (
	jsonKeyError   = "error"
	jsonKeyMessage = "message"

	paramEmail = "email"
	paramID    = "id"

	queryCategory = "category"
	queryEmail    = "email"

	msgContentTypeJSONRequired = "Content-Type must be application/json"
	msgInvalidRequestBody      = "invalid request body"

	msgUserAlreadyExists  = "user already exists"
	msgEmailClaimRequired = "email claim is required"
	msgPriceRequired      = "price must be greater than zero"
	msgSlideRequired      = "slide field is required"

	msgGenerateTokenFail  = "failed to generate token"
	msgCreateUserFail     = "failed to create user"
	msgListUsersFail      = "failed to list users"
	msgGetUserFail        = "failed to fetch user"
	msgUpdateUserFail     = "failed to update user"
	msgListMedicinesFail  = "failed to list medicines"
	msgCreateMedicineFail = "failed to create medicine"
	msgCartFail           = "failed to update cart"
	msgListCartFail       = "failed to list cart items"
	msgPaymentIntentFail  = "failed to create payment intent"
	msgRecordPaymentFail  = "failed to record payment"
	msgListPaymentsFail   = "failed to list payments"
	msgUpdatePaymentFail  = "failed to update payment"
	msgCatalogFail        = "failed to update catalog"
	msgListCatalogFail    = "failed to list catalog"
	msgAdvertFail         = "failed to update advertisement"
	msgListAdvertsFail    = "failed to list advertisements"
)
