package source

import (
	"fmt"

	"github.com/hienpham123/tabletify/internal/dataset"
	"github.com/hienpham123/tabletify/internal/grid"
)

var (
	demoFirst = []string{"Ana", "Bo", "Cem", "Dara", "Eli", "Fei", "Gus", "Hana", "Ivo", "Jun"}
	demoLast  = []string{"Reyes", "Lindqvist", "Okafor", "Tanaka", "Moreau", "Silva", "Novak", "Khan"}
	demoDept  = []string{"Engineering", "Sales", "Ops", "Finance", "Support"}
	demoCity  = []string{"Lisbon", "Austin", "Osaka", "Warsaw", "Nairobi", "Oslo"}
)

// Demo builds a deterministic generated dataset, used by -demo and tests.
// The same n always produces the same rows.
func Demo(n int) *dataset.Dataset {
	if n <= 0 {
		n = 100
	}
	recs := make([]*dataset.Record, 0, n)
	for i := 0; i < n; i++ {
		recs = append(recs, dataset.NewRecord(map[string]string{
			"id":     fmt.Sprintf("%d", i+1),
			"name":   demoFirst[i%len(demoFirst)] + " " + demoLast[(i/3)%len(demoLast)],
			"dept":   demoDept[i%len(demoDept)],
			"city":   demoCity[(i/2)%len(demoCity)],
			"salary": fmt.Sprintf("%d", 42000+(i*977)%80000),
			"tenure": fmt.Sprintf("%dm", 1+(i*7)%96),
		}))
	}

	cols := []grid.Column{
		{Key: "id", Title: "ID", Width: 6, Numeric: true},
		{Key: "name", Title: "Name", Width: 18},
		{Key: "dept", Title: "Dept", Width: 12},
		{Key: "city", Title: "City", Width: 10},
		{Key: "salary", Title: "Salary", Width: 8, Numeric: true},
		{Key: "tenure", Title: "Tenure", Width: 7},
	}
	return dataset.New(cols, recs)
}
