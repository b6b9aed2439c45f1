// SPDX-License-Identifier: MIT

package aashto

import (
	"fmt"

	"github.com/katalvlaran/geolab/core"
)

// Classifier assigns AASHTO groups. Safe for concurrent use.
type Classifier struct {
	opts Options
}

// New returns a Classifier configured by opts.
func New(opts ...Option) *Classifier {
	return &Classifier{opts: gatherOptions(opts...)}
}

// Options returns the resolved configuration.
func (c *Classifier) Options() Options { return c.opts }

// Classify is shorthand for New(opts...).Classify(s).
func Classify(s core.Sample, opts ...Option) (Classification, error) {
	return New(opts...).Classify(s)
}

// Classify returns the AASHTO group and group index of s.
//
// Implementation:
//   - Stage 1: validate s (percent fines must be derivable).
//   - Stage 2: derive percent passing No.10/No.40/No.200.
//   - Stage 3: first matching table column.
//   - Stage 4: group index when the group shows one.
//
// Errors:
//   - core.ErrInvalidInput: s fails validation.
//   - ErrNoMatchingGroup: no column matched (unreachable for consistent data).
func (c *Classifier) Classify(s core.Sample) (Classification, error) {
	if err := s.Validate(); err != nil {
		return Classification{}, fmt.Errorf("aashto: Classify: %w", err)
	}

	p := PercentPassing(s)
	ll, pi := s.LiquidLimit(), s.PlasticityIndex()

	g, err := matchGroup(p, ll, pi)
	if err != nil {
		return Classification{}, err
	}

	res := Classification{Group: g}
	if !g.ShowsGroupIndex() {
		return res, nil
	}
	if c.opts.bounded {
		res.GroupIndex = BoundedGroupIndex(g, p.No200, ll, pi)
	} else {
		res.GroupIndex = GroupIndex(p.No200, ll, pi)
	}

	return res, nil
}
