package service

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"master_ms/internal/api/dto"
	"master_ms/internal/middleware"
	"master_ms/internal/model"
	"master_ms/internal/repository"
)

func newTaxService(t *testing.T, cooldown time.Duration) (*TaxService, *repository.TaxRepo) {
	db := setupMasterTestDB(t)
	repo := repository.NewTaxRepo(db)
	return NewTaxService(repo, newLocalStorage(t), middleware.NewCooldownLimiter(), cooldown, nil), repo
}

func taxReq(name string) *dto.TaxReq {
	v := decimal.NewFromInt(18)
	return &dto.TaxReq{
		TaxName: name, Description: "goods and services", TaxType: "Tax", ValueType: "Percent",
		TaxValue: &v, IsActive: flex(true),
	}
}

// buildWorkbook 生成 base64 编码的 xlsx
func buildWorkbook(t *testing.T, rows ...[]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestTaxService_CreateUpdate(t *testing.T) {
	svc, repo := newTaxService(t, 0)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, taxReq("GST"), 7))
	requireAppErr(t, svc.Create(ctx, taxReq("GST"), 7), 409, "Tax already exist.")

	gst, err := repo.FindOne(ctx, repository.Where(repository.Eq("tax_name", "GST")))
	require.NoError(t, err)
	require.NotNil(t, gst)
	assert.True(t, gst.TaxValue.Equal(decimal.NewFromInt(18)))

	require.NoError(t, svc.Create(ctx, taxReq("VAT"), 7))
	requireAppErr(t, svc.Update(ctx, gst.UUID, taxReq("VAT"), 7), 409, "Tax type already exist.")
	requireAppErr(t, svc.Update(ctx, "missing", taxReq("CESS"), 7), 404, "Data not found.")

	require.NoError(t, svc.Update(ctx, gst.UUID, taxReq("CGST"), 8))
	got, err := svc.Get(ctx, gst.UUID)
	require.NoError(t, err)
	assert.Equal(t, "CGST", got.TaxName)
	assert.Equal(t, int64(8), *got.UpdatedBy)
}

func TestTaxService_CreateRevivesDeleted(t *testing.T) {
	svc, repo := newTaxService(t, 0)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, taxReq("GST"), 7))
	gst, err := repo.FindOne(ctx, repository.Where(repository.Eq("tax_name", "GST")))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, gst.UUID, 7))
	requireAppErr(t, svc.Delete(ctx, gst.UUID, 7), 404, "No data found.")

	require.NoError(t, svc.Create(ctx, taxReq("GST"), 11))
	revived, err := svc.Get(ctx, gst.UUID)
	require.NoError(t, err)
	assert.Equal(t, gst.ID, revived.ID)
	assert.Equal(t, int64(11), *revived.CreatedBy)
	assert.Nil(t, revived.UpdatedBy)
	assert.Nil(t, revived.DeletedAt)
}

func TestTaxService_Import(t *testing.T) {
	svc, repo := newTaxService(t, time.Minute)
	ctx := context.Background()
	require.NoError(t, svc.Create(ctx, taxReq("GST"), 7))

	file := buildWorkbook(t,
		[]interface{}{"tax_name", "description", "tax_type", "value_type", "tax_value"},
		[]interface{}{"GST", "updated", "Tax", "Fixed", "12.5"},
		[]interface{}{"Delivery", "courier", "Fee_And_Charges", "Fixed", "40"},
	)

	n, err := svc.Import(ctx, &dto.ImportTaxReq{File: file}, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	gst, err := repo.FindOne(ctx, repository.Where(repository.Eq("tax_name", "GST")))
	require.NoError(t, err)
	assert.Equal(t, model.TaxValueFixed, gst.ValueType)
	assert.True(t, gst.TaxValue.Equal(decimal.RequireFromString("12.5")))

	total, err := repo.Count(ctx, repository.Where())
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	// 冷却期内再次导入被拒绝
	_, err = svc.Import(ctx, &dto.ImportTaxReq{File: file}, 7)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "400 Please retry after"), err.Error())

	// 其他操作人不受影响
	_, err = svc.Import(ctx, &dto.ImportTaxReq{File: file}, 8)
	require.NoError(t, err)
}

func TestTaxService_ImportFailureResetsCooldown(t *testing.T) {
	svc, _ := newTaxService(t, time.Minute)
	ctx := context.Background()

	missing := buildWorkbook(t,
		[]interface{}{"tax_name", "tax_type"},
		[]interface{}{"GST", "Tax"},
	)
	_, err := svc.Import(ctx, &dto.ImportTaxReq{File: missing}, 7)
	requireAppErr(t, err, 400, "Following columns are missing in uploaded excel value_type,tax_value")

	headerOnly := buildWorkbook(t,
		[]interface{}{"tax_name", "tax_type", "value_type", "tax_value"},
	)
	_, err = svc.Import(ctx, &dto.ImportTaxReq{File: headerOnly}, 7)
	requireAppErr(t, err, 400, "Error while formatting excel data")

	badRow := buildWorkbook(t,
		[]interface{}{"tax_name", "tax_type", "value_type", "tax_value"},
		[]interface{}{"GST", "Levy", "Fixed", "1"},
	)
	_, err = svc.Import(ctx, &dto.ImportTaxReq{File: badRow}, 7)
	requireAppErr(t, err, 400, "Invalid tax_type in row 2.")

	_, err = svc.Import(ctx, &dto.ImportTaxReq{File: "not base64!"}, 7)
	requireAppErr(t, err, 400, "Unable to read uploaded excel file.")
}

func TestTaxService_ImportFromStorageKey(t *testing.T) {
	svc, _ := newTaxService(t, 0)
	ctx := context.Background()

	raw, err := base64.StdEncoding.DecodeString(buildWorkbook(t,
		[]interface{}{"tax_name", "tax_type", "value_type", "tax_value"},
		[]interface{}{"Service Charge", "Fee_And_Charges", "Percent", "5"},
	))
	require.NoError(t, err)
	url, err := svc.storage.Upload(ctx, raw, "taxes.xlsx", "application/octet-stream")
	require.NoError(t, err)

	n, err := svc.Import(ctx, &dto.ImportTaxReq{Key: url}, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestTaxService_FetchByCondition(t *testing.T) {
	svc, _ := newTaxService(t, 0)
	ctx := context.Background()
	require.NoError(t, svc.Create(ctx, taxReq("GST"), 7))
	require.NoError(t, svc.Create(ctx, taxReq("VAT"), 7))

	list, err := svc.FetchByCondition(ctx, &dto.TaxConditionReq{
		Select: []string{"id", "tax_name"},
		Where:  map[string]interface{}{"tax_name": "VAT"},
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "VAT", list[0].TaxName)

	_, err = svc.FetchByCondition(ctx, &dto.TaxConditionReq{Where: map[string]interface{}{"password": "x"}})
	requireAppErr(t, err, 400, "Invalid column in condition.")
}
