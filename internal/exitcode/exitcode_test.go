package exitcode

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/storekit/shopctl/internal/errors"
)

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error",
			err:  nil,
			want: Success,
		},
		{
			name: "auth coded error",
			err:  errors.New(errors.ErrCodeAuthNotLoggedIn, "not logged in"),
			want: AuthError,
		},
		{
			name: "api unavailable",
			err:  errors.New(errors.ErrCodeAPIUnavailable, "api unreachable"),
			want: NetworkError,
		},
		{
			name: "other coded error",
			err:  errors.New(errors.ErrCodeCartEmpty, "cart is empty"),
			want: GeneralError,
		},
		{
			name: "plain unauthorized",
			err:  stderrors.New("server said: unauthorized"),
			want: AuthError,
		},
		{
			name: "connection refused",
			err:  stderrors.New("dial tcp: connection refused"),
			want: NetworkError,
		},
		{
			name: "usage error",
			err:  stderrors.New(`required flag "email" not set`),
			want: UsageError,
		},
		{
			name: "generic error",
			err:  stderrors.New("something went wrong"),
			want: GeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineExitCode(tt.err))
		})
	}
}
