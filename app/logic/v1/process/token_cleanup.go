package process

import (
	"context"
	"log/slog"
	"time"

	"github.com/gorlea-ink/gorlea/pkg/register"
	"github.com/gorlea-ink/gorlea/pkg/safe"
)

func init() {
	register.RegisterFunc[*Process](ProcessKey{}, func(p *Process) {
		// Hourly reap of expired access tokens.
		p.Cron().AddFunc("0 * * * *", func() {
			safe.Run(func() {
				cleanExpiredTokens(p)
			})
		})
	})
}

// cleanExpiredTokens removes tokens whose expiry already passed. Cached
// copies in redis expire on their own ttl.
func cleanExpiredTokens(p *Process) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	affected, err := p.Core().Store().AccessTokenStore().DeleteExpired(ctx, time.Now().Unix())
	if err != nil {
		slog.Error("failed to clean expired access tokens", slog.String("error", err.Error()))
		return
	}
	if affected > 0 {
		slog.Info("cleaned expired access tokens", slog.Int64("count", affected))
	}
}
