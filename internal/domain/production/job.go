package production

import (
	"fmt"

	"github.com/andrescamacho/logistics-go/internal/domain/catalog"
)

// ProductionJob is one in-progress run of a recipe in a single workshop
// slot. Jobs are created with their inputs already consumed and removed
// once elapsed reaches the recipe duration, at which point the output is
// booked into storage.
type ProductionJob struct {
	recipe  *catalog.Recipe
	elapsed int
}

// NewProductionJob creates a job at elapsed zero
func NewProductionJob(recipe *catalog.Recipe) *ProductionJob {
	return &ProductionJob{recipe: recipe}
}

// Recipe returns the recipe this job is running
func (j *ProductionJob) Recipe() *catalog.Recipe {
	return j.recipe
}

// Elapsed returns ticks worked so far
func (j *ProductionJob) Elapsed() int {
	return j.elapsed
}

// Advance progresses the job by one tick and reports completion
func (j *ProductionJob) Advance() bool {
	j.elapsed++
	return j.IsComplete()
}

// IsComplete reports whether the job has run for its full duration
func (j *ProductionJob) IsComplete() bool {
	return j.elapsed >= j.recipe.Duration()
}

// Remaining returns ticks left until completion, never negative
func (j *ProductionJob) Remaining() int {
	remaining := j.recipe.Duration() - j.elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (j *ProductionJob) String() string {
	return fmt.Sprintf("Job(%s %d/%d)", j.recipe.Symbol(), j.elapsed, j.recipe.Duration())
}
