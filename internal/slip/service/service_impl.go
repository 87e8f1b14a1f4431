package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/serialtrack/serialtrack/internal/clock"
	"github.com/serialtrack/serialtrack/internal/slip/domain"
	"github.com/serialtrack/serialtrack/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// saveAttempts bounds the number of fresh slip numbers tried when concurrent
// writers race for the same daily sequence.
const saveAttempts = 3

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
	clock clock.Clock
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("slip.service"),
		repo:  p.Repo,
		genID: p.GenID,
		clock: p.Clock,
	}
}

func (s *Service) NextNumber(ctx context.Context) (string, error) {
	return s.nextNumber(ctx, s.db)
}

func (s *Service) nextNumber(ctx context.Context, tx *gorm.DB) (string, error) {
	today := s.clock.Now().Format("2006-01-02")

	numbers, err := s.repo.NumbersForDate(ctx, tx, today)
	if err != nil {
		return "", err
	}

	next := 1
	for _, number := range numbers {
		seq, ok := parseSequence(number)
		if !ok {
			continue
		}
		if seq >= next {
			next = seq + 1
		}
	}

	// %03d widens naturally once a day passes 999 slips
	return fmt.Sprintf("%s-%03d", today, next), nil
}

// parseSequence reads the numeric suffix after the last hyphen.
func parseSequence(number string) (int, bool) {
	idx := strings.LastIndex(number, "-")
	if idx < 0 || idx == len(number)-1 {
		return 0, false
	}
	seq, err := strconv.Atoi(number[idx+1:])
	if err != nil {
		return 0, false
	}
	return seq, true
}

func (s *Service) Save(ctx context.Context, req domain.SaveRequest) (*domain.Slip, error) {
	number := strings.TrimSpace(req.Number)
	if len(req.Items) == 0 {
		return nil, domain.ErrInvalidRequest
	}
	for _, item := range req.Items {
		if item.ProductID == 0 {
			return nil, domain.ErrInvalidRequest
		}
	}

	var saved *domain.Slip
	for attempt := 0; attempt < saveAttempts; attempt++ {
		if number == "" {
			allocated, err := s.NextNumber(ctx)
			if err != nil {
				return nil, err
			}
			number = allocated
		}

		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			slip := &domain.Slip{
				ID:        s.genID.Generate().Int64(),
				Number:    number,
				OrderNo:   strings.TrimSpace(req.OrderNo),
				Customer:  strings.TrimSpace(req.Customer),
				CreatedAt: s.clock.Now(),
			}
			if err := s.repo.CreateSlip(ctx, tx, slip); err != nil {
				return err
			}

			for _, item := range req.Items {
				quantity := item.Quantity
				if quantity <= 0 {
					quantity = 1
				}
				row := &domain.SlipItem{
					ID:        s.genID.Generate().Int64(),
					SlipID:    slip.ID,
					ProductID: item.ProductID,
					Quantity:  quantity,
				}
				if err := s.repo.CreateItem(ctx, tx, row); err != nil {
					return err
				}

				serials := make([]domain.Serial, 0, len(item.SerialNumbers))
				for _, sn := range item.SerialNumbers {
					sn = strings.TrimSpace(sn)
					if sn == "" {
						continue
					}
					serials = append(serials, domain.Serial{
						ID:     s.genID.Generate().Int64(),
						ItemID: row.ID,
						SN:     sn,
					})
				}
				if err := s.repo.CreateSerials(ctx, tx, serials); err != nil {
					return err
				}
			}

			saved = slip
			return nil
		})
		if err == nil {
			return saved, nil
		}
		if !db.IsDuplicateKeyErr(err) {
			return nil, err
		}

		// lost the race for this number; allocate a fresh one and retry
		s.log.Info("slip number taken, reallocating",
			zap.String("number", number), zap.Int("attempt", attempt+1))
		number = ""
	}

	return nil, domain.ErrNumberConflict
}

func (s *Service) List(ctx context.Context, filter domain.ListFilter) ([]domain.Slip, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	filter.From = strings.TrimSpace(filter.From)
	filter.To = strings.TrimSpace(filter.To)
	return s.repo.ListSlips(ctx, s.db, filter)
}

func (s *Service) Document(ctx context.Context, number string) (*domain.Document, error) {
	slip, err := s.repo.FindSlipByNumber(ctx, s.db, strings.TrimSpace(number))
	if err != nil {
		return nil, err
	}
	if slip == nil {
		return nil, domain.ErrNotFound
	}

	rows, err := s.repo.FindItemRows(ctx, s.db, slip.ID)
	if err != nil {
		return nil, err
	}

	itemIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		itemIDs = append(itemIDs, row.ItemID)
	}
	serials, err := s.repo.FindSerialsForItems(ctx, s.db, itemIDs)
	if err != nil {
		return nil, err
	}
	byItem := make(map[int64][]string, len(rows))
	for _, serial := range serials {
		byItem[serial.ItemID] = append(byItem[serial.ItemID], serial.SN)
	}

	doc := &domain.Document{
		Number:    slip.Number,
		OrderNo:   slip.OrderNo,
		Customer:  slip.Customer,
		CreatedAt: slip.CreatedAt,
		Rows:      make([]domain.DocumentRow, 0, len(rows)),
	}
	for i, row := range rows {
		doc.Rows = append(doc.Rows, domain.DocumentRow{
			Position: i + 1,
			Quantity: row.Quantity,
			Category: row.Category,
			Product:  row.Product,
			Serials:  byItem[row.ItemID],
		})
	}
	return doc, nil
}
