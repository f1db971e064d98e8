package i18n

import "golang.org/x/text/language"

var messages = map[language.Tag]map[string]string{
	language.English: {
		// brand
		"brand._brand_fetched_successfully":                  "Brand fetched successfully.",
		"brand._brand_created_successfully":                  "Brand created successfully.",
		"brand._brand_updated_successfully":                  "Brand updated successfully.",
		"brand._brand_deleted_successfully":                  "Brand deleted successfully.",
		"brand._brand_restore_successfully":                  "Brand restored successfully.",
		"brand._brand_visibility_updated_successfullt":       "Brand visibility updated successfully.",
		"brand._brand_with_same_name_already_exists":         "Brand with same name already exists.",
		"brand._record_already_exists":                       "Record already exists.",
		"brand._we_could_not_find_what_you_are_looking_for":  "We could not find what you are looking for.",
		"brand._error_while_creating_brand":                  "Error while creating brand.",
		"brand._error_while_updating_brand":                  "Error while updating brand.",
		"brand._error_while_deleting_brand":                  "Error while deleting brand.",
		"brand._error_while_restoring_brand":                 "Error while restoring brand.",
		"brand._error_while_updating_brand_visibility":       "Error while updating brand visibility.",
		"brand._error_while_uploading_brand_image":           "Error while uploading brand image.",
		"brand._please_enter_brand_name":                     "Please enter brand name.",

		// cart
		"cart._all_product_from_cart_fetch_successfully_":   "All products from cart fetched successfully.",
		"cart._product_successfully_added_in_cart_":         "Product successfully added in cart.",
		"cart._product_successfully_removed_from_cart_":     "Product successfully removed from cart.",
		"cart._cart_updated_successfully":                   "Cart updated successfully.",
		"cart._product_is_not_exist_with_this_uuid_":        "Product does not exist with this uuid.",
		"cart._product_is_already_exist_in_cart_":           "Product already exists in cart.",
		"cart._record_already_exists":                       "Record already exists.",
		"cart._we_could_not_find_what_you_are_looking_for":  "We could not find what you are looking for.",
		"cart._error_while_adding_product_to_cart_":         "Error while adding product to cart.",
		"cart._error_while_removing_product_from_cart_":     "Error while removing product from cart.",
		"cart._error_while_updating_cart":                   "Error while updating cart.",

		// wishlist
		"wishlist._all_product_from_wishlist_fetch_successfully_":  "All products from wishlist fetched successfully.",
		"wishlist._product_successfully_added_in_wishlist_":        "Product successfully added in wishlist.",
		"wishlist._product_successfully_removed_from_wishlist_":    "Product successfully removed from wishlist.",
		"wishlist._product_is_not_exist_with_this_uuid_":           "Product does not exist with this uuid.",
		"wishlist._product_is_already_exist_in_wishlist_":          "Product already exists in wishlist.",
		"wishlist._we_could_not_find_what_you_are_looking_for":     "We could not find what you are looking for.",
		"wishlist._error_while_adding_product_to_wishlist_":        "Error while adding product to wishlist.",
		"wishlist._error_while_removing_product_from_wishlist_":    "Error while removing product from wishlist.",

		// validation
		"_product_uuid_is_required":      "Product uuid is required.",
		"_quantity_is_required_":         "Quantity is required.",
		"_quantity_can_not_be_negative_": "Quantity can not be negative.",
		"_price_is_required_":            "Price is required.",
		"_price_cannot_be_negative_":     "Price can not be negative.",
		"_product_id_is_required":        "Product id is required.",
		"_id_must_be_interger_":          "Id must be an integer.",
		"validation._invalid_payload":  "Invalid payload.",
		"validation._uuid_is_required": "uuid is required.",
	},
}
