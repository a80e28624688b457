package generation

import (
	"testing"

	"giftcard/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestTrimCodeFence(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: `{"a":1}`, want: `{"a":1}`},
		{name: "fenced", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare_fence", in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "prose_around", in: `Here you go: {"a":1} enjoy`, want: `Here you go: {"a":1} enjoy`},
		{name: "blank", in: "  \n ", want: ""},
		{name: "no_object", in: "hello", want: "hello"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, trimCodeFence(tc.in))
		})
	}
}

func TestParseCopyPayloadRejectsSurroundingProse(t *testing.T) {
	t.Parallel()
	_, err := parseCopyPayload(`Here you go: {"tag":"x"} enjoy`)
	assert.ErrorIs(t, err, domain.ErrUpstreamFormat)

	payload, err := parseCopyPayload("```json\n{\"tag\":\"x\"}\n```")
	assert.NoError(t, err)
	assert.Equal(t, "x", payload.Tag)
}

func TestNormalizeListNeverExceedsLimit(t *testing.T) {
	t.Parallel()
	for n := 0; n < 30; n++ {
		values := make([]string, n)
		for i := range values {
			values[i] = "  v  "
		}
		got := normalizeList(values, 12)
		assert.LessOrEqual(t, len(got), 12)
		assert.NotNil(t, got)
		for _, v := range got {
			assert.Equal(t, "v", v)
		}
	}
}

func TestNormalizeCopyPrefersExplicitDescriptionAndTag(t *testing.T) {
	t.Parallel()
	res := normalizeCopy(copyPayload{
		Description:        " explicit ",
		Tag:                " chosen ",
		DescriptionsMedium: []string{"medium"},
		Tags:               []string{"first"},
	})
	assert.Equal(t, "explicit", res.Description)
	assert.Equal(t, "chosen", res.Tag)
	assert.Equal(t, []string{"medium"}, res.DescriptionsMedium)
	assert.Equal(t, []string{"first"}, res.Tags)
}
