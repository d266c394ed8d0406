package member

import (
	"context"
	"log/slog"

	"github.com/xiebiao/jpashop/internal/domain"
	"github.com/xiebiao/jpashop/pkg/tracing"
)

const tracerName = "jpashop/member"

// Service 会员用例
type Service struct {
	tx      domain.Transactor
	members domain.MemberRepository
}

// NewService 创建会员服务
func NewService(tx domain.Transactor, members domain.MemberRepository) *Service {
	return &Service{tx: tx, members: members}
}

// Join 会员注册
// 同名会员已存在时返回ErrDuplicateMember；
// 并发注册同名时由members.name唯一索引兜底，同样返回ErrDuplicateMember
func (s *Service) Join(ctx context.Context, name string, address domain.Address) (uint, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "Join")
	defer span.End()

	m, err := domain.NewMember(name, address)
	if err != nil {
		return 0, err
	}

	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		found, err := s.members.FindByName(ctx, m.Name)
		if err != nil {
			return err
		}
		if len(found) > 0 {
			return domain.ErrDuplicateMember
		}
		return s.members.Save(ctx, m)
	})
	if err != nil {
		tracing.Fail(span, err)
		return 0, err
	}

	slog.InfoContext(ctx, "会员注册成功", "member_id", m.ID, "name", m.Name)
	return m.ID, nil
}

// Update 修改会员名称
func (s *Service) Update(ctx context.Context, id uint, name string) error {
	return s.tx.Transaction(ctx, func(ctx context.Context) error {
		m, err := s.members.FindOne(ctx, id)
		if err != nil {
			return err
		}
		if err := m.Rename(name); err != nil {
			return err
		}
		return s.members.UpdateName(ctx, m.ID, m.Name)
	})
}

// FindMember 查询单个会员
func (s *Service) FindMember(ctx context.Context, id uint) (*domain.Member, error) {
	return s.members.FindOne(ctx, id)
}

// FindMembers 查询全部会员
func (s *Service) FindMembers(ctx context.Context) ([]*domain.Member, error) {
	return s.members.FindAll(ctx)
}
