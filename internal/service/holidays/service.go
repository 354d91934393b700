package holidays

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-PickupService/internal/domain"
)

// Service источник праздничных дней: статический список из конфигурации
// плюс, если настроен, внешний календарь
type Service struct {
	static   []domain.Holiday
	client   HolidayClient
	location *time.Location
	logger   Logger

	mu       sync.RWMutex
	cache    map[int]cachedYear
	cacheTTL time.Duration
	now      func() time.Time
}

type cachedYear struct {
	holidays  []domain.Holiday
	fetchedAt time.Time
}

// DefaultCacheTTL сколько живёт загруженный из календаря год
const DefaultCacheTTL = 24 * time.Hour

// NewService создает сервис праздников. client может быть nil
func NewService(static []domain.Holiday, client HolidayClient, location *time.Location, logger Logger) *Service {
	return &Service{
		static:   domain.MergeHolidays(static),
		client:   client,
		location: location,
		logger:   logger,
		cache:    make(map[int]cachedYear),
		cacheTTL: DefaultCacheTTL,
		now:      time.Now,
	}
}

// Holidays возвращает праздники с датой в [from, to], отсортированные и без дублей.
// Если внешний календарь недоступен, используется только статический список.
func (s *Service) Holidays(ctx context.Context, from, to time.Time) ([]domain.Holiday, error) {
	from = from.In(s.location)
	to = to.In(s.location)

	if to.Before(from) {
		return nil, fmt.Errorf("%w: from=%s to=%s", ErrInvalidTimeRange, from.Format(time.RFC3339), to.Format(time.RFC3339))
	}

	remote := make([]domain.Holiday, 0)
	if s.client != nil {
		for year := from.Year(); year <= to.Year(); year++ {
			remote = append(remote, s.fetchYear(ctx, year)...)
		}
	}

	return domain.FilterHolidays(domain.MergeHolidays(s.static, remote), from, to), nil
}

// fetchYear получает праздники за год с graceful degradation.
// Успешные ответы кешируются на cacheTTL, ошибки не кешируются
func (s *Service) fetchYear(ctx context.Context, year int) []domain.Holiday {
	s.mu.RLock()
	cached, ok := s.cache[year]
	s.mu.RUnlock()
	if ok && s.now().Sub(cached.fetchedAt) < s.cacheTTL {
		return cached.holidays
	}

	items, err := s.client.GetHolidays(ctx, year)
	if err != nil {
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		s.logger.Error("Holidays: remote calendar unavailable for year=%d, using static list: %v", year, err)
		return nil
	}

	result := make([]domain.Holiday, 0, len(items))
	for _, item := range items {
		h, err := domain.ParseHoliday(item.Date, item.Name, s.location)
		if err != nil {
			s.logger.Warn("Holidays: skipping malformed remote holiday %q: %v", item.Date, err)
			continue
		}
		result = append(result, h)
	}

	s.mu.Lock()
	s.cache[year] = cachedYear{holidays: result, fetchedAt: s.now()}
	s.mu.Unlock()

	s.logger.Info("Holidays: loaded %d holidays for year=%d", len(result), year)
	return result
}
