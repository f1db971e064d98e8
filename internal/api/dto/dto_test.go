package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"master_ms/pkg/apperr"
)

func bindData(t *testing.T, data string, dst interface{}) error {
	t.Helper()
	p := Payload{Data: json.RawMessage(data)}
	return p.Bind(dst)
}

func TestPayload_Decode(t *testing.T) {
	raw := `{"auth":{"id":7},"data":{"name":"x"},"page":"3","query":{"searchText":"  ind "},"uuid":"u-1","id":12,"lang":"en"}`

	var p Payload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	assert.Equal(t, int64(7), p.OperatorID())
	assert.Equal(t, 3, p.PageNo())
	assert.Equal(t, "ind", p.SearchText())
	assert.Equal(t, FlexInt(12), p.ID)

	uuid, err := p.RequireUUID()
	require.NoError(t, err)
	assert.Equal(t, "u-1", uuid)
}

func TestPayload_Defaults(t *testing.T) {
	var p Payload
	require.NoError(t, json.Unmarshal([]byte(`{"page":""}`), &p))
	assert.Equal(t, 1, p.PageNo())

	_, err := p.RequireUUID()
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))
}

func TestBind_StateMessages(t *testing.T) {
	var req StateReq
	err := bindData(t, `{"country_uuid":"c","short_code":"MH"}`, &req)
	require.Error(t, err)
	assert.Equal(t, "Please enter state name.", apperr.From(err).Message)

	req = StateReq{}
	err = bindData(t, `{"country_uuid":"c","name":"Maha1","short_code":"MH"}`, &req)
	assert.Equal(t, "Name must contain only alphabetic characters.", apperr.From(err).Message)

	req = StateReq{}
	require.NoError(t, bindData(t, `{"country_uuid":"c","name":"tamil nadu","short_code":"TN","is_active":"true"}`, &req))
	assert.True(t, req.Active())
}

func TestBind_CityAllowsDash(t *testing.T) {
	var req CityReq
	require.NoError(t, bindData(t, `{"state_uuid":"s","name":"Pimpri-Chinchwad"}`, &req))
	assert.False(t, req.Active())

	var state StateReq
	err := bindData(t, `{"country_uuid":"c","name":"Pimpri-Chinchwad","short_code":"PC"}`, &state)
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))
}

func TestBind_FlexBoolRejectsGarbage(t *testing.T) {
	var req ToggleVisibilityReq
	err := bindData(t, `{"is_active":"maybe"}`, &req)
	require.Error(t, err)
	assert.Equal(t, "Is active should be true or false.", apperr.From(err).Message)

	var empty ToggleVisibilityReq
	err = bindData(t, `{}`, &empty)
	assert.Equal(t, "Please enter visibility type.", apperr.From(err).Message)

	var off ToggleVisibilityReq
	require.NoError(t, bindData(t, `{"is_active":false}`, &off))
	require.NotNil(t, off.IsActive)
	assert.False(t, bool(*off.IsActive))
}

func TestBind_TaxAndCart(t *testing.T) {
	var tax TaxReq
	err := bindData(t, `{"tax_name":"GST","description":"d","tax_type":"VAT","value_type":"Fixed","tax_value":5}`, &tax)
	assert.Equal(t, "Invalid tax type.", apperr.From(err).Message)

	tax = TaxReq{}
	require.NoError(t, bindData(t, `{"tax_name":"GST","description":"d","tax_type":"Tax","value_type":"Percent","tax_value":"18.5"}`, &tax))
	assert.Equal(t, "18.5", tax.Value().String())

	tax = TaxReq{}
	var cart CartReq
	err = bindData(t, `{"product_uuid":"p","quantity":-1,"price":1}`, &cart)
	assert.Equal(t, "_quantity_can_not_be_negative_", apperr.From(err).Message)

	cart = CartReq{}
	require.NoError(t, bindData(t, `{"product_uuid":"p","quantity":0,"price":"9.99"}`, &cart))
	assert.Equal(t, 0, cart.Qty())
}

func TestBind_InvalidJSON(t *testing.T) {
	var req DivisionReq
	err := bindData(t, `{"division_name":`, &req)
	assert.Equal(t, "Invalid payload.", apperr.From(err).Message)
}

func TestOK(t *testing.T) {
	out, err := json.Marshal(OK("done", nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":true,"message":"done"}`, string(out))
}
