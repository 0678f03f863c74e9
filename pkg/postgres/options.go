package postgres

import "time"

// Option tunes pool construction before the first connection attempt.
type Option func(*Postgres)

// MaxPoolSize caps the number of connections held by the pool.
func MaxPoolSize(size int) Option {
	return func(p *Postgres) {
		p.maxPoolSize = size
	}
}

// ConnAttempts sets how many times New retries before giving up.
func ConnAttempts(attempts int) Option {
	return func(p *Postgres) {
		p.connAttempts = attempts
	}
}

// ConnTimeout sets the pause between connection attempts.
func ConnTimeout(timeout time.Duration) Option {
	return func(p *Postgres) {
		p.connTimeout = timeout
	}
}
