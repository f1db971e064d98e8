package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"master_ms/internal/api/dto"
	"master_ms/internal/middleware"
	"master_ms/internal/model"
	"master_ms/internal/repository"
	"master_ms/pkg/apperr"
	"master_ms/pkg/utils"
)

// ImportTaxAction 导入限流使用的操作名
const ImportTaxAction = "importTax"

type TaxService struct {
	repo     *repository.TaxRepo
	storage  *StorageService
	limiter  *middleware.CooldownLimiter
	cooldown time.Duration
	logger   *zap.Logger
}

func NewTaxService(repo *repository.TaxRepo, storage *StorageService, limiter *middleware.CooldownLimiter, cooldown time.Duration, logger *zap.Logger) *TaxService {
	if limiter == nil {
		limiter = middleware.GetLimiter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaxService{repo: repo, storage: storage, limiter: limiter, cooldown: cooldown, logger: logger}
}

// ==================== 查询 ====================

func (s *TaxService) List(ctx context.Context, q ListQuery) (*repository.Page[model.Tax], error) {
	return s.repo.FindManyWithPaginate(ctx, q.filter(false, s.repo.SearchScope(q.SearchText)), q.Page)
}

func (s *TaxService) ListDeleted(ctx context.Context, q ListQuery) (*repository.Page[model.Tax], error) {
	return s.repo.FindManyWithPaginate(ctx, q.filter(true, s.repo.SearchScope(q.SearchText)), q.Page)
}

func (s *TaxService) Get(ctx context.Context, uuid string) (*model.Tax, error) {
	tax, err := s.repo.FindByUUID(ctx, uuid)
	if err = exists(tax, err, "Data not found."); err != nil {
		return nil, err
	}
	return tax, nil
}

// FetchByCondition 供其他服务按列查询税费
func (s *TaxService) FetchByCondition(ctx context.Context, req *dto.TaxConditionReq) ([]model.Tax, error) {
	list, err := s.repo.FindByCondition(ctx, req.Select, req.Where)
	if errors.Is(err, repository.ErrUnknownColumn) {
		return nil, apperr.BadRequest("Invalid column in condition.").WithErr(err)
	}
	return list, err
}

// ==================== 写操作 ====================

// Create 新增税费，同名已删除记录直接恢复并覆盖
func (s *TaxService) Create(ctx context.Context, req *dto.TaxReq, operatorID int64) error {
	name := strings.TrimSpace(req.TaxName)

	live, err := s.repo.FindOne(ctx, repository.Where(repository.Eq(s.repo.Col("tax_name"), name)))
	if err != nil {
		return err
	}
	if live != nil {
		return apperr.Conflict("Tax already exist.")
	}

	tax := &model.Tax{
		TaxName:     name,
		Description: req.Description,
		TaxType:     model.TaxType(req.TaxType),
		ValueType:   model.TaxValueType(req.ValueType),
		TaxValue:    req.Value(),
	}
	tax.IsActive = req.Active()
	tax.CreatedBy = model.Operator(operatorID)
	tax.UpdatedBy = model.Operator(operatorID)

	revive := model.ReviveFields()
	revive["description"] = tax.Description
	revive["tax_type"] = tax.TaxType
	revive["value_type"] = tax.ValueType
	revive["tax_value"] = tax.TaxValue
	revive["is_active"] = tax.IsActive
	revive["created_at"] = time.Now()
	revive["created_by"] = model.Operator(operatorID)
	revive["updated_by"] = nil
	revive["updated_at"] = time.Now()

	return duplicateAs(s.repo.UpsertByName(ctx, tax, revive), apperr.Conflict("Tax already exist."))
}

func (s *TaxService) Update(ctx context.Context, uuid string, req *dto.TaxReq, operatorID int64) error {
	tax, err := s.repo.FindByUUID(ctx, uuid)
	if err = exists(tax, err, "Data not found."); err != nil {
		return err
	}

	name := strings.TrimSpace(req.TaxName)
	other, err := s.repo.FindOne(ctx, repository.Where(
		repository.NotUUID(s.repo.Table(), uuid),
		repository.Eq(s.repo.Col("tax_name"), name),
	))
	if err != nil {
		return err
	}
	if other != nil {
		return apperr.Conflict("Tax type already exist.")
	}

	_, err = s.repo.Update(ctx, repository.Where(repository.ByID(s.repo.Table(), tax.ID)), map[string]interface{}{
		"tax_name":    name,
		"description": req.Description,
		"tax_type":    req.TaxType,
		"value_type":  req.ValueType,
		"tax_value":   req.Value(),
		"is_active":   req.Active(),
		"updated_by":  model.Operator(operatorID),
	})
	return duplicateAs(err, apperr.Conflict("Tax type already exist."))
}

func (s *TaxService) ToggleVisibility(ctx context.Context, uuid string, active bool, operatorID int64) error {
	tax, err := s.repo.FindByUUID(ctx, uuid)
	if err = exists(tax, err, "No data found."); err != nil {
		return err
	}

	n, err := s.repo.Update(ctx, repository.Where(repository.ByID(s.repo.Table(), tax.ID)), map[string]interface{}{
		"is_active":  active,
		"updated_by": model.Operator(operatorID),
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.BadRequest("Error while updating tax visibility.")
	}
	return nil
}

func (s *TaxService) Delete(ctx context.Context, uuid string, operatorID int64) error {
	tax, err := s.repo.FindByUUID(ctx, uuid)
	if err = exists(tax, err, "No data found."); err != nil {
		return err
	}

	_, err = s.repo.Update(ctx, repository.Where(repository.ByID(s.repo.Table(), tax.ID)), model.SoftDeleteFields(operatorID))
	return err
}

func (s *TaxService) Restore(ctx context.Context, uuid string, operatorID int64) error {
	tax, err := s.repo.FindOne(ctx, repository.WhereDeleted(repository.ByUUID(s.repo.Table(), uuid)))
	if err = exists(tax, err, "Data not found"); err != nil {
		return err
	}

	_, err = s.repo.Update(ctx, repository.WhereDeleted(repository.ByID(s.repo.Table(), tax.ID)), model.RestoreFields(operatorID))
	return err
}

// ==================== Excel 导入 ====================

// Import 导入税费 Excel，每行按 tax_name 新增或覆盖
// 同一操作人两次导入之间需间隔 cooldown，导入失败不计入冷却
func (s *TaxService) Import(ctx context.Context, req *dto.ImportTaxReq, operatorID int64) (int, error) {
	key := middleware.OperatorKey(operatorID, ImportTaxAction)
	if s.cooldown > 0 {
		if res := s.limiter.Check(key, s.cooldown); !res.Allowed {
			return 0, apperr.BadRequest(middleware.FormatRetryMessage(res.RetryAfter))
		}
	}

	n, err := s.importRows(ctx, req, operatorID)
	if err != nil {
		s.limiter.Reset(key)
		s.logger.Warn("tax import failed", zap.Int64("operator", operatorID), zap.Error(err))
		return 0, err
	}

	s.logger.Info("tax import finished", zap.Int64("operator", operatorID), zap.Int("rows", n))
	return n, nil
}

func (s *TaxService) importRows(ctx context.Context, req *dto.ImportTaxReq, operatorID int64) (int, error) {
	data, err := s.readImportFile(ctx, req)
	if err != nil {
		return 0, err
	}

	rows, err := utils.ReadExcel(data)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, apperr.BadRequest("Error while formatting excel data")
	}
	if err := utils.ValidateExcelHeader(rows[0], utils.ImportTax); err != nil {
		return 0, err
	}

	records := utils.FormatExcelData(rows)
	if len(records) == 0 {
		return 0, apperr.BadRequest("Error while formatting excel data")
	}

	taxes := make([]*model.Tax, 0, len(records))
	for i, rec := range records {
		tax, err := taxFromRow(rec, i+2)
		if err != nil {
			return 0, err
		}
		tax.CreatedBy = model.Operator(operatorID)
		taxes = append(taxes, tax)
	}

	for _, tax := range taxes {
		update := model.ReviveFields()
		update["description"] = tax.Description
		update["tax_type"] = tax.TaxType
		update["value_type"] = tax.ValueType
		update["tax_value"] = tax.TaxValue
		update["is_active"] = true
		update["updated_by"] = model.Operator(operatorID)
		update["updated_at"] = time.Now()

		if err := s.repo.UpsertByName(ctx, tax, update); err != nil {
			return 0, err
		}
	}
	return len(taxes), nil
}

// readImportFile 获取 Excel 内容：base64 文件或对象存储 key
func (s *TaxService) readImportFile(ctx context.Context, req *dto.ImportTaxReq) ([]byte, error) {
	if req.File != "" {
		if IsDataURI(req.File) {
			data, _, err := DecodeDataURI(req.File)
			if err != nil {
				return nil, apperr.BadRequest("Unable to read uploaded excel file.").WithErr(err)
			}
			return data, nil
		}
		data, err := base64.StdEncoding.DecodeString(req.File)
		if err != nil {
			return nil, apperr.BadRequest("Unable to read uploaded excel file.").WithErr(err)
		}
		return data, nil
	}

	if s.storage == nil {
		return nil, apperr.ServiceUnavailable("File storage is not configured.")
	}
	data, err := s.storage.Download(ctx, req.Key)
	if err != nil {
		return nil, apperr.BadRequest("Unable to read uploaded excel file.").WithErr(err)
	}
	return data, nil
}

// taxFromRow 校验并转换一行 Excel 数据，line 为 Excel 中的行号
func taxFromRow(rec map[string]string, line int) (*model.Tax, error) {
	name := rec["tax_name"]
	if name == "" {
		return nil, apperr.BadRequest(fmt.Sprintf("tax_name is required in row %d.", line))
	}

	taxType := model.TaxType(rec["tax_type"])
	if taxType != model.TaxTypeTax && taxType != model.TaxTypeFeeAndCharges {
		return nil, apperr.BadRequest(fmt.Sprintf("Invalid tax_type in row %d.", line))
	}

	valueType := model.TaxValueType(rec["value_type"])
	if valueType != model.TaxValueFixed && valueType != model.TaxValuePercent {
		return nil, apperr.BadRequest(fmt.Sprintf("Invalid value_type in row %d.", line))
	}

	value, err := decimal.NewFromString(rec["tax_value"])
	if err != nil {
		return nil, apperr.BadRequest(fmt.Sprintf("Invalid tax_value in row %d.", line))
	}

	tax := &model.Tax{
		TaxName:     name,
		Description: rec["description"],
		TaxType:     taxType,
		ValueType:   valueType,
		TaxValue:    value,
	}
	tax.IsActive = true
	return tax, nil
}
