// Copyright (c) 2026 Inkpress. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/inkpress/pkg/slug"
)

/*
TestFrom verifies the full slug transformation pipeline.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Startup", "startup"},
		{"spaces", "Product Design", "product-design"},
		{"accents", "Café Société", "cafe-societe"},
		{"punctuation", "B2B & SaaS!", "b2b-saas"},
		{"multiple_spaces", "a   b", "a-b"},
		{"leading_trailing", "  hello  ", "hello"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
