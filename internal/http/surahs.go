package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	surahrepo "github.com/tahfiz/listening/internal/database/surahs"
)

// SurahsController serves the surah reference table.
type SurahsController struct {
	surahs *surahrepo.Repository
}

// NewSurahsController creates a new SurahsController.
func NewSurahsController(surahs *surahrepo.Repository) *SurahsController {
	return &SurahsController{surahs: surahs}
}

func (sc *SurahsController) GetAllSurahs(c *gin.Context) {
	surahs, err := sc.surahs.GetAll()
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"surahs": surahs, "count": len(surahs)})
}

func (sc *SurahsController) GetSurah(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "invalid surah number"})
		return
	}

	surah, err := sc.surahs.GetByNumber(number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.IndentedJSON(http.StatusNotFound, gin.H{"error": "surah not found"})
			return
		}
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, surah)
}
