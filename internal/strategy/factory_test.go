package strategy

import (
	"errors"
	"math/rand"
	"testing"
)

// TestFactoryInterface tests that the Factory interface is properly defined
func TestFactoryInterface(t *testing.T) {
	var _ Factory = (*DefaultFactory)(nil)
}

func TestNewFactory(t *testing.T) {
	factory := NewFactory()
	if factory == nil {
		t.Error("NewFactory should return a non-nil factory")
	}
}

func TestFactory_CreateStrategy(t *testing.T) {
	tests := []struct {
		name         string
		strategyType Type
		expectError  bool
	}{
		{
			name:         "sequential",
			strategyType: Sequential,
		},
		{
			name:         "random",
			strategyType: Random,
		},
		{
			name:         "custom queue",
			strategyType: CustomQueue,
		},
		{
			name:         "invalid strategy type",
			strategyType: Type("shuffle_weighted"),
			expectError:  true,
		},
		{
			name:         "empty strategy type",
			strategyType: Type(""),
			expectError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory := NewFactoryWithRand(func() *rand.Rand {
				return rand.New(rand.NewSource(1))
			})

			s, err := factory.CreateStrategy(tt.strategyType)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if !errors.Is(err, ErrInvalidStrategyType) {
					t.Errorf("expected ErrInvalidStrategyType, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s == nil {
				t.Fatal("expected non-nil strategy")
			}

			switch tt.strategyType {
			case Sequential:
				if _, ok := s.(*SequentialStrategy); !ok {
					t.Errorf("expected SequentialStrategy, got %T", s)
				}
			case Random:
				if _, ok := s.(*RandomStrategy); !ok {
					t.Errorf("expected RandomStrategy, got %T", s)
				}
			case CustomQueue:
				if _, ok := s.(*CustomQueueStrategy); !ok {
					t.Errorf("expected CustomQueueStrategy, got %T", s)
				}
			}
		})
	}
}

func TestFactory_CreateCustomQueue_TypedHandle(t *testing.T) {
	factory := NewFactory()

	// The typed path returns the concrete type so the queue can be
	// assigned without a type assertion
	s := factory.CreateCustomQueue()
	if s == nil {
		t.Fatal("expected non-nil strategy")
	}
	s.SetQueue([]int{1, 0})

	var _ PlayStrategy = s
}

func TestFactory_GetSupportedStrategies(t *testing.T) {
	factory := NewFactory()

	supported := factory.GetSupportedStrategies()
	if len(supported) != 3 {
		t.Errorf("expected 3 supported strategies, got %d", len(supported))
	}
}

func TestFactory_IsValidStrategyType(t *testing.T) {
	factory := NewFactory()

	for _, strategyType := range factory.GetSupportedStrategies() {
		if !factory.IsValidStrategyType(strategyType) {
			t.Errorf("IsValidStrategyType(%q) = false, want true", strategyType)
		}
	}

	if factory.IsValidStrategyType(Type("genre")) {
		t.Error("IsValidStrategyType should reject unknown types")
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		input       string
		want        Type
		expectError bool
	}{
		{input: "sequential", want: Sequential},
		{input: "random", want: Random},
		{input: "custom_queue", want: CustomQueue},
		{input: "Sequential", expectError: true},
		{input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseType(tt.input)

			if tt.expectError {
				if !errors.Is(err, ErrInvalidStrategyType) {
					t.Errorf("expected ErrInvalidStrategyType, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
