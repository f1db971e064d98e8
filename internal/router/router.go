package router

import (
	"master_ms/internal/controller"
	"master_ms/pkg/microservice"
)

// Controllers 所有模块的控制器
type Controllers struct {
	Country   *controller.CountryController
	State     *controller.StateController
	City      *controller.CityController
	Brand     *controller.BrandController
	Tax       *controller.TaxController
	Division  *controller.DivisionController
	ContactUs *controller.ContactUsController
	Cart      *controller.CartController
	Wishlist  *controller.WishlistController
}

// InitPatterns 注册所有 message pattern
func InitPatterns(r *microservice.Router, h *controller.ExceptionHandler, c Controllers) {
	// country
	r.Register(FetchAllCountry, h.Wrap(c.Country.FetchAll))
	r.Register(FetchAllDeletedCountry, h.Wrap(c.Country.FetchAllDeleted))
	r.Register(FetchAllCountryForDropdown, h.Wrap(c.Country.Dropdown))
	r.Register(FindCountryByID, h.Wrap(c.Country.FindByID))
	r.Register(CreateCountry, h.Wrap(c.Country.Create))
	r.Register(UpdateCountry, h.Wrap(c.Country.Update))
	r.Register(RestoreCountry, h.Wrap(c.Country.Restore))
	r.Register(DeleteCountry, h.Wrap(c.Country.Delete))
	r.Register(ToggleCountryVisibility, h.Wrap(c.Country.ToggleVisibility))

	// state
	r.Register(FetchAllState, h.Wrap(c.State.FetchAll))
	r.Register(FetchAllDeletedState, h.Wrap(c.State.FetchAllDeleted))
	r.Register(FetchAllStateForDropdown, h.Wrap(c.State.Dropdown))
	r.Register(FindStateByID, h.Wrap(c.State.FindByID))
	r.Register(CreateState, h.Wrap(c.State.Create))
	r.Register(UpdateState, h.Wrap(c.State.Update))
	r.Register(RestoreDeletedState, h.Wrap(c.State.Restore))
	r.Register(DeleteState, h.Wrap(c.State.Delete))
	r.Register(ToggleStateVisibility, h.Wrap(c.State.ToggleVisibility))

	// city
	r.Register(FetchAllCity, h.Wrap(c.City.FetchAll))
	r.Register(FetchAllDeletedCity, h.Wrap(c.City.FetchAllDeleted))
	r.Register(FetchAllCityForDropdown, h.Wrap(c.City.Dropdown))
	r.Register(FindCityByID, h.Wrap(c.City.FindByID))
	r.Register(CreateCity, h.Wrap(c.City.Create))
	r.Register(UpdateCity, h.Wrap(c.City.Update))
	r.Register(RestoreDeletedCity, h.Wrap(c.City.Restore))
	r.Register(DeleteCity, h.Wrap(c.City.Delete))
	r.Register(ToggleCityVisibility, h.Wrap(c.City.ToggleVisibility))

	// brand
	r.Register(FetchAllBrand, h.Wrap(c.Brand.FetchAll))
	r.Register(FetchAllDeletedBrand, h.Wrap(c.Brand.FetchAllDeleted))
	r.Register(FetchAllBrandForDropdown, h.Wrap(c.Brand.Dropdown))
	r.Register(FindBrandByID, h.Wrap(c.Brand.FindByID))
	r.Register(CreateBrand, h.Wrap(c.Brand.Create))
	r.Register(UpdateBrand, h.Wrap(c.Brand.Update))
	r.Register(RestoreBrand, h.Wrap(c.Brand.Restore))
	r.Register(ToggleBrandVisibility, h.Wrap(c.Brand.ToggleVisibility))
	r.Register(DeleteBrand, h.Wrap(c.Brand.Delete))

	// tax
	r.Register(FetchAllTax, h.Wrap(c.Tax.FetchAll))
	r.Register(FetchAllDeletedTax, h.Wrap(c.Tax.FetchAllDeleted))
	r.Register(FindTaxByID, h.Wrap(c.Tax.FindByID))
	r.Register(CreateTax, h.Wrap(c.Tax.Create))
	r.Register(UpdateTax, h.Wrap(c.Tax.Update))
	r.Register(DeleteTax, h.Wrap(c.Tax.Delete))
	r.Register(RestoreTax, h.Wrap(c.Tax.Restore))
	r.Register(ToggleTaxVisibility, h.Wrap(c.Tax.ToggleVisibility))
	r.Register(ImportTax, h.Wrap(c.Tax.Import))
	r.Register(FetchTaxesByCondition, h.Wrap(c.Tax.FetchByCondition))

	// division
	r.Register(FetchAllDivision, h.Wrap(c.Division.FetchAll))
	r.Register(FetchAllDeletedDivision, h.Wrap(c.Division.FetchAllDeleted))
	r.Register(FetchAllDivisionForDropdown, h.Wrap(c.Division.Dropdown))
	r.Register(FindDivisionByID, h.Wrap(c.Division.FindByID))
	r.Register(CreateDivision, h.Wrap(c.Division.Create))
	r.Register(UpdateDivision, h.Wrap(c.Division.Update))
	r.Register(RestoreDivision, h.Wrap(c.Division.Restore))
	r.Register(ToggleDivisionVisibility, h.Wrap(c.Division.ToggleVisibility))
	r.Register(DeleteDivision, h.Wrap(c.Division.Delete))

	// contact us
	r.Register(FetchAllContactUs, h.Wrap(c.ContactUs.FetchAll))
	r.Register(FindContactUsByID, h.Wrap(c.ContactUs.FindByID))
	r.Register(CreateContactUs, h.Wrap(c.ContactUs.Create))
	r.Register(DeleteContactUs, h.Wrap(c.ContactUs.Delete))

	// cart
	r.Register(FetchAllCartProduct, h.Wrap(c.Cart.FetchAll))
	r.Register(AddProductToCart, h.Wrap(c.Cart.Add))
	r.Register(RemoveProductFromCart, h.Wrap(c.Cart.Remove))
	r.Register(UpdateCart, h.Wrap(c.Cart.Update))

	// wishlist
	r.Register(FetchAllWishlistProduct, h.Wrap(c.Wishlist.FetchAll))
	r.Register(AddProductToWishList, h.Wrap(c.Wishlist.Add))
	r.Register(RemoveProductFromWishList, h.Wrap(c.Wishlist.Remove))
}
