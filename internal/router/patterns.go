package router

import "master_ms/pkg/microservice"

// ==================== Message Patterns ====================
// TCP 使用 {role, cmd}，Kafka 使用 role 作为 topic

var (
	FetchAllCountry            = microservice.Pattern{Role: "fetchAllCountry", Cmd: "fetch-all-country"}
	FetchAllDeletedCountry     = microservice.Pattern{Role: "fetchAllDeletedCountry", Cmd: "fetch-all-deleted-country"}
	FetchAllCountryForDropdown = microservice.Pattern{Role: "fetchAllCountryForDropdown", Cmd: "fetch-all-country-for-dropdown"}
	FindCountryByID            = microservice.Pattern{Role: "findCountryById", Cmd: "find-country-by-id"}
	CreateCountry              = microservice.Pattern{Role: "createCountry", Cmd: "create-country"}
	UpdateCountry              = microservice.Pattern{Role: "updateCountry", Cmd: "update-country"}
	RestoreCountry             = microservice.Pattern{Role: "restoreCountry", Cmd: "restore-country"}
	DeleteCountry              = microservice.Pattern{Role: "deleteCountry", Cmd: "delete-country"}
	ToggleCountryVisibility    = microservice.Pattern{Role: "toggleCountryVisibility", Cmd: "toggle-country-visibility"}
)

var (
	FetchAllState            = microservice.Pattern{Role: "fetchAllState", Cmd: "fetch-all-state"}
	FetchAllDeletedState     = microservice.Pattern{Role: "fetchAllDeletedState", Cmd: "fetch-all-deleted-state"}
	FetchAllStateForDropdown = microservice.Pattern{Role: "fetchAllStateForDropdown", Cmd: "fetch-all-state-for-dropdown"}
	FindStateByID            = microservice.Pattern{Role: "findStateById", Cmd: "find-state-by-id"}
	CreateState              = microservice.Pattern{Role: "createState", Cmd: "create-state"}
	UpdateState              = microservice.Pattern{Role: "updateState", Cmd: "update-state"}
	RestoreDeletedState      = microservice.Pattern{Role: "restoreDeletedState", Cmd: "restore-deleted-state"}
	DeleteState              = microservice.Pattern{Role: "deleteState", Cmd: "delete-state"}
	ToggleStateVisibility    = microservice.Pattern{Role: "toggleStateVisibility", Cmd: "toggle-state-visibility"}
)

var (
	FetchAllCity            = microservice.Pattern{Role: "fetchAllCity", Cmd: "fetch-all-city"}
	FetchAllDeletedCity     = microservice.Pattern{Role: "fetchAllDeletedCity", Cmd: "fetch-all-deleted-city"}
	FetchAllCityForDropdown = microservice.Pattern{Role: "fetchAllCityForDropdown", Cmd: "fetch-all-city-for-dropdown"}
	FindCityByID            = microservice.Pattern{Role: "findCityById", Cmd: "find-city-by-id"}
	CreateCity              = microservice.Pattern{Role: "createCity", Cmd: "create-city"}
	UpdateCity              = microservice.Pattern{Role: "updateCity", Cmd: "update-city"}
	RestoreDeletedCity      = microservice.Pattern{Role: "restoreDeletedCity", Cmd: "restore-deleted-city"}
	DeleteCity              = microservice.Pattern{Role: "deleteCity", Cmd: "delete-city"}
	ToggleCityVisibility    = microservice.Pattern{Role: "toggleCityVisibility", Cmd: "toggle-city-visibility"}
)

var (
	FetchAllBrand            = microservice.Pattern{Role: "fetchAllBrand", Cmd: "fetch-all-brand"}
	FetchAllDeletedBrand     = microservice.Pattern{Role: "fetchAllDeletedBrand", Cmd: "fetch-all-deleted-brand"}
	FetchAllBrandForDropdown = microservice.Pattern{Role: "fetchAllBrandForDropdown", Cmd: "fetch-all-brand-for-dropdown"}
	FindBrandByID            = microservice.Pattern{Role: "findBrandById", Cmd: "find-brand-by-id"}
	CreateBrand              = microservice.Pattern{Role: "createBrand", Cmd: "create-brand"}
	UpdateBrand              = microservice.Pattern{Role: "updateBrand", Cmd: "update-brand"}
	RestoreBrand             = microservice.Pattern{Role: "restoreBrand", Cmd: "restore-brand"}
	ToggleBrandVisibility    = microservice.Pattern{Role: "toggleBrandVisibility", Cmd: "toggle-brand-visibility"}
	DeleteBrand              = microservice.Pattern{Role: "deleteBrand", Cmd: "delete-brand"}
)

var (
	FetchAllTax           = microservice.Pattern{Role: "fetchAllTax", Cmd: "fetch-all-tax"}
	FetchAllDeletedTax    = microservice.Pattern{Role: "fetchAllDeletedTax", Cmd: "fetch-all-deleted-tax"}
	FindTaxByID           = microservice.Pattern{Role: "findTaxById", Cmd: "find-tax-by-id"}
	CreateTax             = microservice.Pattern{Role: "createTax", Cmd: "create-tax"}
	UpdateTax             = microservice.Pattern{Role: "updateTax", Cmd: "update-tax"}
	DeleteTax             = microservice.Pattern{Role: "deleteTax", Cmd: "delete-tax"}
	RestoreTax            = microservice.Pattern{Role: "restoreTax", Cmd: "restore-tax"}
	ToggleTaxVisibility   = microservice.Pattern{Role: "toggleTaxVisibility", Cmd: "toggle-tax-visibility"}
	ImportTax             = microservice.Pattern{Role: "importTax", Cmd: "import-tax"}
	FetchTaxesByCondition = microservice.Pattern{Role: "fetchTaxesByCondition", Cmd: "fetch-taxes-by-condition"}
)

var (
	FetchAllDivision            = microservice.Pattern{Role: "fetchAllDivision", Cmd: "fetch-all-division"}
	FetchAllDeletedDivision     = microservice.Pattern{Role: "fetchAllDeletedDivision", Cmd: "fetch-all-deleted-division"}
	FetchAllDivisionForDropdown = microservice.Pattern{Role: "fetchAllDivisionForDropdown", Cmd: "fetch-all-division-for-dropdown"}
	FindDivisionByID            = microservice.Pattern{Role: "findDivisionById", Cmd: "find-division-by-id"}
	CreateDivision              = microservice.Pattern{Role: "createDivision", Cmd: "create-division"}
	UpdateDivision              = microservice.Pattern{Role: "updateDivision", Cmd: "update-division"}
	RestoreDivision             = microservice.Pattern{Role: "restoreDivision", Cmd: "restore-division"}
	ToggleDivisionVisibility    = microservice.Pattern{Role: "toggleDivisionVisibility", Cmd: "toggle-division-visibility"}
	DeleteDivision              = microservice.Pattern{Role: "deleteDivision", Cmd: "delete-division"}
)

var (
	FetchAllContactUs = microservice.Pattern{Role: "fetchAllContactUs", Cmd: "fetch-all-contact-us"}
	FindContactUsByID = microservice.Pattern{Role: "findContactUsById", Cmd: "find-contact-us-by-id"}
	CreateContactUs   = microservice.Pattern{Role: "createContactUs", Cmd: "create-contact-us"}
	DeleteContactUs   = microservice.Pattern{Role: "deleteContactUs", Cmd: "delete-contact-us"}
)

var (
	FetchAllCartProduct   = microservice.Pattern{Role: "fetchAllCartProduct", Cmd: "fetch-all-cart-product"}
	AddProductToCart      = microservice.Pattern{Role: "AddProductToCart", Cmd: "add-product-to-cart"}
	RemoveProductFromCart = microservice.Pattern{Role: "RemoveProductFromCart", Cmd: "remove-product-from-cart"}
	UpdateCart            = microservice.Pattern{Role: "UpdateCart", Cmd: "update-cart"}
)

var (
	FetchAllWishlistProduct   = microservice.Pattern{Role: "fetchAllWishlistProduct", Cmd: "fetch-all-wishlist-product"}
	AddProductToWishList      = microservice.Pattern{Role: "AddProductToWishList", Cmd: "add-product-to-wishlist"}
	RemoveProductFromWishList = microservice.Pattern{Role: "RemoveProductFromWishList", Cmd: "remove-product-from-wishlist"}
)
