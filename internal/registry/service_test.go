package registry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lhclub/recordkeeper/internal/apperr"
	"github.com/lhclub/recordkeeper/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterTrimsAndPersists(t *testing.T) {
	mock := registry.NewMock()
	svc := registry.NewService(mock)

	user, err := svc.Register(context.Background(), "  Alice  ")
	require.NoError(t, err)

	assert.Equal(t, "Alice", user.Name)
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	require.Len(t, mock.InsertCalls, 1)
	assert.Equal(t, "Alice", mock.InsertCalls[0].Name)
}

func TestRegisterRejectsInvalidNames(t *testing.T) {
	tests := []struct {
		desc string
		name string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"over 20 characters", strings.Repeat("a", 21)},
		{"over 20 characters after trim", "  " + strings.Repeat("가", 21) + "  "},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			mock := registry.NewMock()
			svc := registry.NewService(mock)

			_, err := svc.Register(context.Background(), tc.name)
			require.Error(t, err)
			assert.True(t, apperr.IsKind(err, apperr.KindValidation))
			assert.Empty(t, mock.InsertCalls, "the registry must not be mutated")
		})
	}
}

func TestRegisterRejectsCaseInsensitiveDuplicate(t *testing.T) {
	mock := registry.NewMock()
	mock.FindByNameFunc = func(ctx context.Context, name string) (*registry.User, error) {
		if strings.EqualFold(name, "Alice") {
			return &registry.User{ID: "u1", Name: "Alice"}, nil
		}
		return nil, nil
	}
	svc := registry.NewService(mock)

	_, err := svc.Register(context.Background(), "alice")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindDuplicate))
	assert.EqualError(t, err, "이미 등록된 이름입니다")
	assert.Empty(t, mock.InsertCalls)
}

func TestRegisterSurfacesStorageFailures(t *testing.T) {
	mock := registry.NewMock()
	mock.InsertFunc = func(ctx context.Context, user registry.User) error {
		return errors.New("disk full")
	}
	svc := registry.NewService(mock)

	_, err := svc.Register(context.Background(), "Alice")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindStorage))
}

func TestListNames(t *testing.T) {
	mock := registry.NewMock()
	mock.ListFunc = func(ctx context.Context) ([]registry.User, error) {
		return []registry.User{{Name: "Alice"}, {Name: "Bob"}, {Name: "Zoe"}}, nil
	}
	svc := registry.NewService(mock)

	names, err := svc.ListNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob", "Zoe"}, names)
}
