package renderer

import (
	"fmt"

	"github.com/etnz/marina"
)

// statementRow is one vessel's line in the billing statement.
type statementRow struct {
	Name        string
	Length      string
	Location    string
	Charge      string
	Outstanding string
}

// statementData feeds the statement template.
type statementData struct {
	Rows             []statementRow
	Count            int
	TotalCharge      string
	TotalOutstanding string
}

// Statement renders a markdown billing statement: each vessel's projected
// monthly charge and current balance, plus fleet totals.
func Statement(vessels []marina.Vessel, rates marina.RateTable) string {
	data := statementData{Count: len(vessels)}

	var totalCharge, totalOutstanding marina.Money
	for _, v := range vessels {
		charge := marina.MonthlyCharge(v, rates)
		totalCharge = totalCharge.Add(charge)
		totalOutstanding = totalOutstanding.Add(v.Outstanding)
		data.Rows = append(data.Rows, statementRow{
			Name:        v.Name,
			Length:      fmt.Sprintf("%.0f'", v.LengthFt),
			Location:    v.Location.Category().String() + " " + Spot(v.Location),
			Charge:      charge.String(),
			Outstanding: v.Outstanding.String(),
		})
	}
	data.TotalCharge = totalCharge.String()
	data.TotalOutstanding = totalOutstanding.String()

	return renderTemplate("statement.md", data)
}
