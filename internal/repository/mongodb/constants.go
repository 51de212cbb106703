package mongodb

const (
	adminDatabase = "admin"

	collUsers          = "users"
	collMedicines      = "medicines"
	collCategories     = "categorys"
	collSliders        = "sliders"
	collCarts          = "carts"
	collPayments       = "payments"
	collAdvertisements = "advertisements"

	fieldID          = "_id"
	fieldEmail       = "email"
	fieldCategory    = "category"
	fieldDiscount    = "discount"
	fieldSellerEmail = "sellerEmail"
	fieldBuyerEmail  = "buyerEmail"
	fieldStatus      = "status"
	fieldSlide       = "slide"
	fieldName        = "name"
	fieldRole        = "role"
	fieldPhoto       = "photo"
	fieldTitle       = "title"
	fieldImage       = "image"
	fieldDescription = "description"
	fieldActive      = "active"

	opSet = "$set"
	opGt  = "$gt"
	opIn  = "$in"

	errConnectFmt     = "failed to connect to mongodb: %w"
	errPingFmt        = "failed to ping mongodb: %w"
	errEnsureIndexFmt = "failed to ensure index on %s: %w"

	errInvalidObjectID     = "invalid document id"
	errUserEmailExists     = "user with this email already exists"
	errUnexpectedInsertID  = "unexpected inserted id type"
	errFailedInsertFmt     = "failed to insert into %s: %w"
	errFailedFindFmt       = "failed to query %s: %w"
	errFailedUpdateFmt     = "failed to update %s: %w"
	errFailedDeleteFmt     = "failed to delete from %s: %w"
)
