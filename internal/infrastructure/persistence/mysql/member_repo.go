package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/jpashop/internal/domain"
	apperrors "github.com/xiebiao/jpashop/pkg/errors"
)

// memberRepository 会员仓储实现
// 负责domain实体与GORM模型之间的转换，唯一索引冲突转换为ErrDuplicateMember
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository 创建会员仓储
func NewMemberRepository(db *gorm.DB) domain.MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Save(ctx context.Context, m *domain.Member) error {
	model := toMemberModel(m)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return domain.ErrDuplicateMember
		}
		return apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "保存会员失败")
	}
	m.ID = model.ID
	return nil
}

func (r *memberRepository) FindOne(ctx context.Context, id uint) (*domain.Member, error) {
	var model MemberModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "查询会员失败")
	}
	return toMemberEntity(&model), nil
}

func (r *memberRepository) FindAll(ctx context.Context) ([]*domain.Member, error) {
	var models []MemberModel
	if err := getDB(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "查询会员列表失败")
	}
	return toMemberEntities(models), nil
}

func (r *memberRepository) FindByName(ctx context.Context, name string) ([]*domain.Member, error) {
	var models []MemberModel
	if err := getDB(ctx, r.db).Where("name = ?", name).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "按名称查询会员失败")
	}
	return toMemberEntities(models), nil
}

func (r *memberRepository) UpdateName(ctx context.Context, id uint, name string) error {
	result := getDB(ctx, r.db).Model(&MemberModel{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return domain.ErrDuplicateMember
		}
		return apperrors.WrapCode(result.Error, apperrors.ErrCodeDatabaseError, "更新会员失败")
	}
	if result.RowsAffected == 0 {
		// 名称未变化时MySQL返回0行，再查一次确认是否存在
		if _, err := r.FindOne(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toMemberModel(m *domain.Member) *MemberModel {
	return &MemberModel{
		ID:      m.ID,
		Name:    m.Name,
		City:    m.Address.City,
		Street:  m.Address.Street,
		Zipcode: m.Address.Zipcode,
	}
}

func toMemberEntity(model *MemberModel) *domain.Member {
	return domain.RestoreMember(model.ID, model.Name, domain.NewAddress(model.City, model.Street, model.Zipcode))
}

func toMemberEntities(models []MemberModel) []*domain.Member {
	members := make([]*domain.Member, len(models))
	for i := range models {
		members[i] = toMemberEntity(&models[i])
	}
	return members
}
