package search

import "fmt"

// iterativeDeepening repeats depth-limited search with limit 0, 1, 2, ...
//
// A round that exhausts its frontier cannot tell "too shallow" from
// "unreachable", so the driver always moves on to the next limit. The only
// exits besides success are the opt-in bounds: MaxDepth, MaxExpansions and
// context cancellation.
func (s *Searcher[S]) iterativeDeepening(strategy Strategy) (Result[S], error) {
	total := 0
	for limit := 0; ; limit++ {
		if s.opts.MaxDepth != Unlimited && limit > s.opts.MaxDepth {
			res := Result[S]{
				Strategy: strategy,
				Status:   NotFound,
				Stats:    Stats{TotalExpansions: total, Rounds: limit, Limit: limit - 1},
			}
			err := fmt.Errorf("%w: no goal within depth %d", ErrDepthLimit, s.opts.MaxDepth)
			s.logResult(res, err)
			return res, err
		}

		budget := 0
		if s.opts.MaxExpansions > 0 {
			budget = s.opts.MaxExpansions - total
			if budget <= 0 {
				res := Result[S]{
					Strategy: strategy,
					Status:   NotFound,
					Stats:    Stats{TotalExpansions: total, Rounds: limit, Limit: limit - 1},
				}
				err := fmt.Errorf("%w: %d expansions", ErrExpansionLimit, total)
				s.logResult(res, err)
				return res, err
			}
		}

		r, err := s.newRun(strategy, limit, budget)
		if err != nil {
			return Result[S]{Strategy: strategy}, err
		}
		goal, status, err := r.loop()
		total += r.cnt

		res := r.result(goal, status)
		res.Stats.TotalExpansions = total
		res.Stats.Rounds = limit + 1
		if err != nil || status == Found {
			s.logResult(res, err)
			return res, err
		}
		s.opts.Logger.Debug("deepening round exhausted",
			"strategy", strategy.String(),
			"limit", limit,
			"expansions", r.cnt,
		)
	}
}
