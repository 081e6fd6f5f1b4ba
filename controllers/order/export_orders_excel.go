package orderControllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ismailkendil058/albadr-api/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ExportOrdersToExcel downloads all orders (optionally filtered by status)
// as a spreadsheet.
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Order{}).Preload("Items")
		if status := c.Query("status"); status != "" {
			mapped, err := mapOrderStatus(status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			query = query.Where("status = ?", mapped)
		}

		var orders []models.Order
		if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"Ref", "Customer", "Phone", "Wilaya", "DeliveryType", "Store",
			"Status", "Subtotal", "DeliveryPrice", "Total", "Manual",
			"Items", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()
			row.AddCell().SetValue(o.OrderRef)
			row.AddCell().SetValue(o.CustomerName)
			row.AddCell().SetValue(o.CustomerPhone)
			row.AddCell().SetValue(fmt.Sprintf("%d %s", o.WilayaCode, o.WilayaName))
			row.AddCell().SetValue(string(o.DeliveryType))
			row.AddCell().SetValue(o.Store)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.Subtotal)
			row.AddCell().SetValue(o.DeliveryPrice)
			row.AddCell().SetValue(o.Total)
			row.AddCell().SetValue(o.Manual)

			var lines []string
			for _, item := range o.Items {
				label := item.FRName
				if item.WeightLabel != "" {
					label += " " + item.WeightLabel
				}
				lines = append(lines, fmt.Sprintf("%d× %s", item.Quantity, label))
			}
			row.AddCell().SetValue(strings.Join(lines, "; "))

			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
