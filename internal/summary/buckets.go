package summary

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed buckets.yaml
var bucketsYAML []byte

// Bucket is one named task total and the source metrics summed into it.
type Bucket struct {
	Name    string   `yaml:"name"`
	Sources []string `yaml:"sources"`
}

type bucketMapping struct {
	Buckets  []Bucket `yaml:"buckets"`
	Staffing struct {
		Present    string `yaml:"present"`
		HoursOther string `yaml:"hours_other"`
		Required   string `yaml:"required"`
		Variance   string `yaml:"variance"`
	} `yaml:"staffing"`
}

var mapping bucketMapping

// Metric names of the staffing KPIs, fixed by the embedded mapping.
var (
	StaffPresentMetric  string
	HoursOtherMetric    string
	StaffRequiredMetric string
	StaffVarianceMetric string
)

func init() {
	if err := yaml.Unmarshal(bucketsYAML, &mapping); err != nil {
		panic(fmt.Sprintf("summary: embedded bucket mapping is invalid: %v", err))
	}
	StaffPresentMetric = mapping.Staffing.Present
	HoursOtherMetric = mapping.Staffing.HoursOther
	StaffRequiredMetric = mapping.Staffing.Required
	StaffVarianceMetric = mapping.Staffing.Variance
}

// Buckets returns the declared bucket mapping in order.
func Buckets() []Bucket {
	return mapping.Buckets
}

// StaffingKPIs returns the metric names excluded from task rollups.
func StaffingKPIs() []string {
	return []string{StaffPresentMetric, StaffRequiredMetric, StaffVarianceMetric}
}
