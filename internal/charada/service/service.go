package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/charadas/charadas-api/internal/charada"
	"github.com/charadas/charadas-api/internal/charada/repository"
)

var (
	ErrNotFound = errors.New("not found")
	ErrEmpty    = errors.New("no charadas stored")
	ErrInvalid  = errors.New("pergunta and resposta are required")
	// ErrCounterBehind is returned when a forced counter value would reissue a stored ID.
	ErrCounterBehind = errors.New("counter value would reissue ids")
)

// Service defines the riddle operations used by the handler layer and the seeder.
type Service interface {
	List(ctx context.Context) ([]*charada.Charada, error)
	Random(ctx context.Context) (*charada.Charada, error)
	Get(ctx context.Context, id string) (*charada.Charada, error)
	Create(ctx context.Context, pergunta, resposta string) (*charada.Charada, error)
	Update(ctx context.Context, id, pergunta, resposta string) error
	Delete(ctx context.Context, id string) error
	// SyncCounter makes sure the counter is at least the highest stored ID and returns it.
	SyncCounter(ctx context.Context) (int64, error)
	// ForceCounter raises the counter to value. Values below the current
	// counter or the highest stored ID are refused.
	ForceCounter(ctx context.Context, value int64) error
	Ping(ctx context.Context) error
}

// Option customizes the service.
type Option func(*charadaService)

// WithPicker replaces the uniform random index picker. pick receives n > 0
// and must return a value in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(s *charadaService) { s.pick = pick }
}

// New returns a Service on top of the given repository.
func New(repo repository.Repository, opts ...Option) Service {
	s := &charadaService{repo: repo, pick: rand.IntN}
	for _, o := range opts {
		o(s)
	}
	return s
}

// NewMemoryService returns a Service backed by the in-memory repository.
func NewMemoryService(opts ...Option) Service {
	return New(repository.NewMemoryRepo(), opts...)
}

type charadaService struct {
	repo repository.Repository
	pick func(n int) int
}

func (s *charadaService) List(ctx context.Context) ([]*charada.Charada, error) {
	return s.repo.List(ctx)
}

func (s *charadaService) Random(ctx context.Context) (*charada.Charada, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrEmpty
	}
	return list[s.pick(len(list))], nil
}

func (s *charadaService) Get(ctx context.Context, id string) (*charada.Charada, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return c, nil
}

// Create reserves the next counter value and stores the riddle under it.
// Nothing is written when the input is invalid.
func (s *charadaService) Create(ctx context.Context, pergunta, resposta string) (*charada.Charada, error) {
	if err := validate(pergunta, resposta); err != nil {
		return nil, err
	}
	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, err
	}
	c := charada.New(id, pergunta, resposta)
	if err := s.repo.Insert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *charadaService) Update(ctx context.Context, id, pergunta, resposta string) error {
	if err := validate(pergunta, resposta); err != nil {
		return err
	}
	return mapNotFound(s.repo.Update(ctx, id, pergunta, resposta))
}

func (s *charadaService) Delete(ctx context.Context, id string) error {
	return mapNotFound(s.repo.Delete(ctx, id))
}

func (s *charadaService) SyncCounter(ctx context.Context) (int64, error) {
	highest, err := s.highestID(ctx)
	if err != nil {
		return 0, err
	}
	return s.repo.RaiseCounter(ctx, highest)
}

func (s *charadaService) ForceCounter(ctx context.Context, value int64) error {
	highest, err := s.highestID(ctx)
	if err != nil {
		return err
	}
	if value < highest {
		return fmt.Errorf("%w: %d < highest stored id %d", ErrCounterBehind, value, highest)
	}
	cur, err := s.repo.CurrentID(ctx)
	if err != nil {
		return err
	}
	if value < cur {
		return fmt.Errorf("%w: %d < current counter %d", ErrCounterBehind, value, cur)
	}
	_, err = s.repo.RaiseCounter(ctx, value)
	return err
}

func (s *charadaService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func (s *charadaService) highestID(ctx context.Context) (int64, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	var highest int64
	for _, c := range list {
		if c.ID > highest {
			highest = c.ID
		}
	}
	return highest, nil
}

func validate(pergunta, resposta string) error {
	if pergunta == "" || resposta == "" {
		return ErrInvalid
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
