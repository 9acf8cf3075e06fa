package summary

import "github.com/google/uuid"

// Run is the per-run outcome at the optimum epoch: the row with the lowest
// validation error average.
type Run struct {
	ID           uuid.UUID `json:"id,omitempty" csv:"-"`
	Label        string    `json:"label" csv:"label"`
	Source       string    `json:"source" csv:"source"`
	Epochs       int       `json:"epochs" csv:"epochs"`
	OptimumEpoch int       `json:"optimum_epoch" csv:"optimum_epoch"`
	TrainLoss    float64   `json:"train_loss" csv:"train_loss_avg"`
	TrainError   float64   `json:"train_error" csv:"train_error_avg"`
	ValidLoss    float64   `json:"valid_loss" csv:"valid_loss_avg"`
	ValidError   float64   `json:"valid_error" csv:"valid_error_avg"`
	TestLoss     float64   `json:"test_loss" csv:"test_loss_avg"`
	TestError    float64   `json:"test_error" csv:"test_error_avg"`
	Elapsed      float64   `json:"elapsed" csv:"elapsed"`
}

// Aggregated summarizes all trials sharing a label.
type Aggregated struct {
	Label            string  `json:"label"`
	Trials           int     `json:"trials"`
	TestErrorMean    float64 `json:"test_error_mean"`
	TestErrorStd     float64 `json:"test_error_std"`
	ValidErrorMean   float64 `json:"valid_error_mean"`
	ValidErrorStd    float64 `json:"valid_error_std"`
	ElapsedMean      float64 `json:"elapsed_mean"`
	ElapsedStd       float64 `json:"elapsed_std"`
	OptimumEpochMean float64 `json:"optimum_epoch_mean"`
}
