package tariffcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ismailkendil058/albadr-api/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ImportTariffsFromExcel bulk-loads the delivery price grid. Expected
// columns: Store, WilayaCode, WilayaName, HomePrice, BureauPrice, ReturnFee,
// Active. Rows upsert on the (store, wilaya) pair — 58 wilayas × 2 stores
// is not something anyone should type into a form.
func ImportTariffsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			store := strings.ToLower(get(0))
			wilayaCode, err1 := strconv.Atoi(get(1))
			wilayaName := get(2)
			homePrice, err2 := strconv.ParseFloat(get(3), 64)
			bureauPrice, err3 := strconv.ParseFloat(get(4), 64)
			returnFee, _ := strconv.ParseFloat(get(5), 64)
			activeStr := strings.ToLower(get(6))

			if !models.ValidStore(store) || err1 != nil || !models.ValidWilaya(wilayaCode) || err2 != nil || err3 != nil {
				skippedCount++
				continue
			}
			active := activeStr != "false" && activeStr != "0"

			var tariff models.Tariff
			err := db.Where("store = ? AND wilaya_code = ?", store, wilayaCode).First(&tariff).Error
			if err != nil && err != gorm.ErrRecordNotFound {
				skippedCount++
				continue
			}
			isNew := err == gorm.ErrRecordNotFound

			tariff.Store = store
			tariff.WilayaCode = wilayaCode
			tariff.WilayaName = wilayaName
			tariff.HomePrice = homePrice
			tariff.BureauPrice = bureauPrice
			tariff.ReturnFee = returnFee
			tariff.Active = active

			if err := db.Save(&tariff).Error; err != nil {
				skippedCount++
				continue
			}
			if isNew {
				createdCount++
			} else {
				updatedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
