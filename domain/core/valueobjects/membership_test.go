package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMembershipForPoints(t *testing.T) {
	tests := []struct {
		points int
		want   MembershipLevel
	}{
		{0, MembershipBronze},
		{199, MembershipBronze},
		{200, MembershipSilver},
		{499, MembershipSilver},
		{500, MembershipGold},
		{999, MembershipGold},
		{1000, MembershipPlatinum},
		{5000, MembershipPlatinum},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MembershipForPoints(tt.points), "points=%d", tt.points)
	}
}
