package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/hallhub/SHB-ScheduleService/internal/domain"
	hallClient "github.com/hallhub/SHB-ScheduleService/internal/integrations/hallservice"
	"github.com/hallhub/SHB-ScheduleService/internal/service/schedule/models"
)

// Service сервис для работы с недельными расписаниями залов
type Service struct {
	scheduleRepo ScheduleRepository
	hallClient   HallServiceClient
	txManager    TxManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	hallClient HallServiceClient,
	txManager TxManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		hallClient:   hallClient,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetByHall получает расписание зала.
// Публичный для аутентифицированных пользователей; пустой список означает,
// что расписание еще не настроено (это не ошибка).
func (s *Service) GetByHall(ctx context.Context, hallID int64) ([]models.DayResponse, error) {
	s.logger.Info("GetByHall: fetching schedule for hall=%d", hallID)

	days, err := s.scheduleRepo.GetByHall(ctx, hallID)
	if err != nil {
		s.logger.Error("GetByHall: repository error for hall=%d: %v", hallID, err)
		return nil, fmt.Errorf("%w: GetByHall - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByHall: fetched %d day entries for hall=%d", len(days), hallID)
	return models.FromDomainDays(days), nil
}

// Replace полностью заменяет недельное расписание зала (bulk upsert всех семи дней).
// Доступно только менеджерам зала. Валидация инвариантов выполняется до
// обращения к хранилищу; первая ошибка называет день недели.
func (s *Service) Replace(ctx context.Context, hallID int64, req *models.ReplaceScheduleRequest) ([]models.DayResponse, error) {
	s.logger.Info("Replace: replacing schedule for hall=%d by user=%d", hallID, req.UserID)

	// 1. Собираем и валидируем агрегат (семь дней, без пропусков и дублей)
	week, err := domain.FromRecords(hallID, req.ToDomainDays(hallID))
	if err != nil {
		s.logger.Warn("Replace: malformed schedule for hall=%d: %v", hallID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Проверяем инвариант начало < конец для каждого активного дня
	if violations := week.Validate(); len(violations) > 0 {
		s.logger.Warn("Replace: validation failed for hall=%d: %v", hallID, violations[0].Message)
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, violations[0].Message)
	}

	// 3. Получаем зал для проверки существования и прав доступа
	hall, err := s.hallClient.GetHall(ctx, hallID)
	if err != nil {
		if errors.Is(err, hallClient.ErrHallNotFound) {
			s.logger.Warn("Replace: hall id=%d not found", hallID)
			return nil, ErrHallNotFound
		}
		s.logger.Error("Replace: failed to get hall id=%d: %v", hallID, err)
		return nil, fmt.Errorf("%w: failed to get hall: %v", ErrInternal, err)
	}

	// 4. Проверяем права доступа (только менеджер зала)
	if !hall.IsManager(req.UserID) {
		s.logger.Warn("Replace: user=%d is not a manager of hall=%d", req.UserID, hallID)
		return nil, ErrAccessDenied
	}

	// 5. Заменяем расписание атомарно: удаление и вставка в одной транзакции
	var persisted []*domain.DaySchedule
	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		var txErr error
		persisted, txErr = s.scheduleRepo.ReplaceForHall(ctx, hallID, week.Records())
		return txErr
	})
	if err != nil {
		s.logger.Error("Replace: repository error for hall=%d: %v", hallID, err)
		return nil, fmt.Errorf("%w: Replace - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Replace: schedule replaced for hall=%d, %d entries persisted", hallID, len(persisted))
	return models.FromDomainDays(persisted), nil
}
