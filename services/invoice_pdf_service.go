package services

import (
	"fmt"

	"github.com/houranii/tyreshop/models"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

var (
	darkGray   = color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray = color.Color{Red: 121, Green: 119, Blue: 109}
)

// GenerateOrderInvoicePDF renders an A4 invoice for order.
func GenerateOrderInvoicePDF(order models.Order) ([]byte, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	// Header
	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("INVOICE", props.Text{Size: 24, Style: consts.Bold, Color: darkGray})
		})
	})
	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("TYRE WAREHOUSE", props.Text{Size: 16, Style: consts.Bold, Color: darkGray})
		})
	})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("orders@tyrewarehouse.co.nz", props.Text{Size: 9, Color: mediumGray})
		})
	})

	m.Row(8, func() {})

	// Bill to / details
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("BILL TO", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		})
		m.Col(6, func() {
			m.Text("INVOICE DETAILS", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
	})
	twoColumn(m, order.CustomerName, fmt.Sprintf("Invoice #%s", order.ID), true)
	twoColumn(m, order.Email, fmt.Sprintf("Date: %s", order.CreatedAt.Format("Jan 02, 2006")), false)
	twoColumn(m, order.Phone, fmt.Sprintf("Status: %s / %s", order.Status, order.PaymentStatus), false)
	twoColumn(m, order.Address, fmt.Sprintf("%s: %s", order.ServiceType, order.LocationName), false)

	m.Row(8, func() {})

	// Items
	itemRow(m, "Description", "Qty", "Price", "Total", true)
	subtotal := 0.0
	for _, item := range order.Items {
		subtotal += item.Total
		itemRow(m,
			item.Name,
			fmt.Sprintf("%d", item.Quantity),
			fmt.Sprintf("$%.2f", item.Price),
			fmt.Sprintf("$%.2f", item.Total),
			false,
		)
	}

	m.Row(8, func() {})

	summaryRow(m, "Subtotal", fmt.Sprintf("$%.2f", subtotal), 9, false)
	summaryRow(m, order.ServiceType.FeeLabel(), "$0.00", 9, false)
	summaryRow(m, "Total", fmt.Sprintf("$%.2f", order.Total), 12, true)

	if order.PaymentMethod != "" {
		m.Row(8, func() {})
		m.Row(5, func() {
			m.Col(12, func() {
				m.Text("Paid with "+order.PaymentMethod, props.Text{Size: 9, Color: mediumGray})
			})
		})
	}

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", order.ID, err)
	}
	return buf.Bytes(), nil
}

func twoColumn(m pdf.Maroto, left, right string, bold bool) {
	leftProps := props.Text{Size: 9, Color: mediumGray}
	if bold {
		leftProps = props.Text{Size: 10, Style: consts.Bold, Color: darkGray}
	}
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(left, leftProps)
		})
		m.Col(6, func() {
			m.Text(right, props.Text{Size: 9, Color: darkGray, Align: consts.Right})
		})
	})
}

func itemRow(m pdf.Maroto, desc, qty, price, total string, header bool) {
	size, style := 9.0, consts.Normal
	if header {
		size, style = 8, consts.Bold
	}
	m.Row(6, func() {
		m.Col(6, func() {
			m.Text(desc, props.Text{Size: size, Style: style, Color: darkGray})
		})
		for _, v := range []string{qty, price, total} {
			m.Col(2, func() {
				m.Text(v, props.Text{Size: size, Style: style, Color: darkGray, Align: consts.Right})
			})
		}
	})
}

func summaryRow(m pdf.Maroto, label, value string, size float64, bold bool) {
	labelColor, style := mediumGray, consts.Normal
	if bold {
		labelColor, style = darkGray, consts.Bold
	}
	m.Row(size-1, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text(label, props.Text{Size: size, Style: style, Color: labelColor, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text(value, props.Text{Size: size, Style: style, Color: darkGray, Align: consts.Right})
		})
	})
}
