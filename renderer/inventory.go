package renderer

import (
	"fmt"

	"github.com/etnz/marina"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Inventory renders the fleet as a table, in the fleet's sorted order.
func Inventory(vessels []marina.Vessel) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Vessel", "Length", "Location", "Spot", "Owes"})

	for _, v := range vessels {
		tw.AppendRow(table.Row{
			v.Name,
			fmt.Sprintf("%.0f'", v.LengthFt),
			v.Location.Category().String(),
			Spot(v.Location),
			v.Outstanding.String(),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// Spot formats the location detail the way the inventory shows it:
// "#5" for slips and storage spots, the bay letter for land, the tag for
// trailers.
func Spot(loc marina.Location) string {
	switch l := loc.(type) {
	case marina.SlipLocation:
		return fmt.Sprintf("#%d", l.Number)
	case marina.LandLocation:
		return string(l.Bay)
	case marina.TrailerLocation:
		return l.Tag
	case marina.StorageLocation:
		return fmt.Sprintf("#%d", l.Spot)
	default:
		return ""
	}
}
