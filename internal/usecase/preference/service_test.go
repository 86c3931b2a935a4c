package preference

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/creatorhub/domain"
	"github.com/Guyuepp/creatorhub/domain/mocks"
)

func TestRate(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		pref    domain.UserPreference
		repoErr error
		wantErr error
		calls   bool
	}{
		{"max score", domain.UserPreference{UserID: 1, CreatorID: 2, Score: 5}, nil, nil, true},
		{"min score", domain.UserPreference{UserID: 1, CreatorID: 2, Score: -5}, nil, nil, true},
		{"zero score", domain.UserPreference{UserID: 1, CreatorID: 2, Score: 0}, nil, nil, true},
		{"above range", domain.UserPreference{UserID: 1, CreatorID: 2, Score: 6}, nil, domain.ErrBadParamInput, false},
		{"below range", domain.UserPreference{UserID: 1, CreatorID: 2, Score: -6}, nil, domain.ErrBadParamInput, false},
		{"missing creator", domain.UserPreference{UserID: 1, Score: 1}, nil, domain.ErrBadParamInput, false},
		{"store error", domain.UserPreference{UserID: 1, CreatorID: 2, Score: 1}, errors.New("lock wait timeout"), nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.PreferenceRepository)
			svc := NewService(repo)
			svc.now = func() time.Time { return fixed }
			if tt.calls {
				repo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.UserPreference")).Return(tt.repoErr).Once()
			}

			p := tt.pref
			err := svc.Rate(context.Background(), &p)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.repoErr != nil:
				assert.Equal(t, tt.repoErr, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, fixed, p.UpdatedAt)
			}
			repo.AssertExpectations(t)
		})
	}
}
