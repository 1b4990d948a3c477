package parameter

import (
	"math"
	"testing"

	"github.com/voidgrid/firecontrol/component"
)

func TestDefaultWeightsValidate(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Fatalf("default weights invalid: %v", err)
	}
}

func TestValidateRejectsNonFinite(t *testing.T) {
	w := DefaultWeights()
	w.Direction = math.NaN()
	if err := w.Validate(); err == nil {
		t.Error("NaN scalar weight passed validation")
	}

	w = DefaultWeights()
	w.VariantOverrides["elite"] = math.Inf(1)
	if err := w.Validate(); err == nil {
		t.Error("infinite map entry passed validation")
	}
}

func TestValidateRejectsBadBounds(t *testing.T) {
	w := DefaultWeights()
	w.TargetingRange = 0
	if err := w.Validate(); err == nil {
		t.Error("zero targeting range passed validation")
	}

	w = DefaultWeights()
	w.MultiLock.Targets = 0
	if err := w.Validate(); err == nil {
		t.Error("zero multi-lock targets passed validation")
	}

	w = DefaultWeights()
	w.MultiLock.MaxRecommended = 0
	if err := w.Validate(); err == nil {
		t.Error("zero max recommended passed validation")
	}
}

func TestCloneIsDeep(t *testing.T) {
	w := DefaultWeights()
	c := w.Clone()

	c.Behavior["chaser"] = 99
	c.Size[component.SizeLarge] = 99
	c.Direction = 99

	if w.Behavior["chaser"] == 99 {
		t.Error("clone shares the behavior map")
	}
	if w.Size[component.SizeLarge] == 99 {
		t.Error("clone shares the size map")
	}
	if w.Direction == 99 {
		t.Error("clone shares scalar fields")
	}
}
