package snailfish

import (
	"bytes"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/sebdah/goldie/v2"
)

func TestNumber2Dot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	cases := []struct{ name, s string }{
		{"simple", "[[1,2],3]"},
		{"explode", "[[[[[9,8],1],2],3],4]"},
		{"split", "[[[[0,7],4],[15,[0,13]]],[1,1]]"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Number2Dot(MustParse(c.s), &buf); err != nil {
				t.Fatal(err)
			}
			g.Assert(t, c.name, buf.Bytes())
		})
	}
}
