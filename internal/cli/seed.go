package cli

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-PickupService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PickupService/internal/infra/storage/booking"
)

var (
	demoNames  = []string{"山田太郎", "鈴木花子", "佐藤健太", "高橋美咲", "伊藤直人"}
	demoEmails = []string{"test1@example.com", "test2@example.com", "test3@example.com", "test4@example.com", "test5@example.com"}
	demoPhones = []string{"090-1111-2222", "090-3333-4444", "090-5555-6666", "090-7777-8888", "090-9999-0000"}
)

// maxDrawAttempts ограничивает поиск рабочего дня в диапазоне из одних выходных
const maxDrawAttempts = 100

func newSeedDemoCmd(opts *options) *cobra.Command {
	var (
		count    int
		fromStr  string
		toStr    string
		seedFlag uint64
	)

	cmd := &cobra.Command{
		Use:   "seed-demo",
		Short: "Insert demo bookings at random business hours in a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(opts)
			if err != nil {
				return err
			}
			defer log.Close()

			loc, err := cfg.Location()
			if err != nil {
				return err
			}
			holidays, err := cfg.HolidayList()
			if err != nil {
				return err
			}

			from, to, err := parseSeedRange(fromStr, toStr, time.Now(), loc)
			if err != nil {
				return err
			}

			db, err := openAndMigrate(cfg, log, true)
			if err != nil {
				return err
			}
			defer db.Close()

			if seedFlag == 0 {
				seedFlag = uint64(time.Now().UnixNano())
			}
			gen := newDemoGenerator(rand.New(rand.NewPCG(seedFlag, seedFlag^0x9e3779b97f4a7c15)), cfg.Policy(), holidays)

			repo := bookingRepo.NewRepository(db)
			ctx := context.Background()
			now := time.Now()

			inserted, skipped := 0, 0
			for i := 0; i < count; i++ {
				booking, err := gen.Booking(from, to, now)
				if err != nil {
					return err
				}

				if _, err := repo.Create(ctx, booking); err != nil {
					if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
						skipped++
						continue
					}
					return fmt.Errorf("failed to insert demo booking: %w", err)
				}

				inserted++
				fmt.Fprintf(cmd.OutOrStdout(), "inserted booking %s: %s %s at %s\n",
					booking.ID, booking.OrderNumber, booking.Name, booking.PickupAt.In(loc).Format("2006-01-02 15:04"))
			}

			log.Info("seed-demo: inserted=%d skipped=%d range=%s..%s",
				inserted, skipped, from.Format(domain.DateFormat), to.Format(domain.DateFormat))
			fmt.Fprintf(cmd.OutOrStdout(), "done: inserted=%d, skipped (slot taken)=%d\n", inserted, skipped)
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 10, "number of bookings to insert")
	cmd.Flags().StringVar(&fromStr, "from", "", "first day of the range, YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&toStr, "to", "", "last day of the range, YYYY-MM-DD (default: from + 30 days)")
	cmd.Flags().Uint64Var(&seedFlag, "seed", 0, "random seed (0 picks one from the clock)")
	return cmd
}

// parseSeedRange разбирает границы диапазона в бизнес-таймзоне. Обе границы включительно
func parseSeedRange(fromStr, toStr string, now time.Time, loc *time.Location) (from, to time.Time, err error) {
	if fromStr == "" {
		n := now.In(loc)
		from = time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)
	} else {
		from, err = time.ParseInLocation(domain.DateFormat, fromStr, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from %q: expected YYYY-MM-DD", fromStr)
		}
	}

	if toStr == "" {
		to = from.AddDate(0, 0, domain.DefaultMaxLeadDays)
	} else {
		to, err = time.ParseInLocation(domain.DateFormat, toStr, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to %q: expected YYYY-MM-DD", toStr)
		}
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("--to %s is before --from %s", to.Format(domain.DateFormat), from.Format(domain.DateFormat))
	}

	return from, to, nil
}

// demoGenerator создает случайные бронирования в рабочие часы
type demoGenerator struct {
	rng      *rand.Rand
	policy   *domain.BookingPolicy
	holidays []domain.Holiday
}

func newDemoGenerator(rng *rand.Rand, policy *domain.BookingPolicy, holidays []domain.Holiday) *demoGenerator {
	return &demoGenerator{
		rng:      rng,
		policy:   policy,
		holidays: holidays,
	}
}

// Booking выбирает случайный рабочий день в [from, to] и случайный час в рабочих часах
func (g *demoGenerator) Booking(from, to, now time.Time) (*domain.Booking, error) {
	days := daysBetween(from, to) + 1

	for attempt := 0; attempt < maxDrawAttempts; attempt++ {
		day := from.AddDate(0, 0, g.rng.IntN(days))
		if domain.IsWeekend(day) || domain.IsHoliday(g.holidays, day) {
			continue
		}

		hours := g.policy.BusinessHours
		hour := hours.Start + g.rng.IntN(hours.Len())
		orderDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

		return &domain.Booking{
			ID:          uuid.New(),
			Name:        pick(g.rng, demoNames),
			Email:       pick(g.rng, demoEmails),
			Phone:       pick(g.rng, demoPhones),
			PickupAt:    g.policy.SlotTime(day, hour),
			OrderDate:   &orderDate,
			OrderNumber: fmt.Sprintf("TEST-%d", 1000+g.rng.IntN(9000)),
			Status:      domain.StatusConfirmed,
			CreatedAt:   now,
		}, nil
	}

	return nil, fmt.Errorf("no business day found between %s and %s",
		from.Format(domain.DateFormat), to.Format(domain.DateFormat))
}

func daysBetween(from, to time.Time) int {
	days := 0
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.IntN(len(values))]
}
