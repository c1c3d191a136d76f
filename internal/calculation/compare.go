package calculation

import (
	"context"
	"fmt"
	"sync"

	"github.com/wealthpath/wealth-calculator/internal/domain"
)

// maxConcurrentProjections bounds the scenario fan-out.
const maxConcurrentProjections = 4

// RunScenarios projects every named input concurrently. Results keep the
// order of inputs; the first failing scenario (in input order) is reported.
func (pe *ProjectionEngine) RunScenarios(ctx context.Context, inputs []domain.NamedInput) ([]domain.ScenarioResult, error) {
	results := make([]domain.ScenarioResult, len(inputs))
	errs := make([]error, len(inputs))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxConcurrentProjections)

	for i := range inputs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire semaphore
			defer func() { <-semaphore }() // Release semaphore

			ni := inputs[idx]
			series, err := pe.Project(ctx, ni.Input)
			if err != nil {
				errs[idx] = fmt.Errorf("scenario %q: %w", ni.Name, err)
				return
			}
			results[idx] = domain.ScenarioResult{
				Name:    ni.Name,
				Input:   ni.Input,
				Series:  series,
				Summary: Summarize(ni.Input, series),
			}
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// CompareRegimes projects the same input under every account regime, all
// sharing the same pre-tax growth.
func (pe *ProjectionEngine) CompareRegimes(ctx context.Context, in domain.ProjectionInput) ([]domain.ScenarioResult, error) {
	inputs := make([]domain.NamedInput, 0, len(domain.AllRegimes))
	for _, r := range domain.AllRegimes {
		inputs = append(inputs, domain.NamedInput{Name: r.DisplayName(), Input: in.WithRegime(r)})
	}
	return pe.RunScenarios(ctx, inputs)
}
