// Package content implements the archive-aware CRUD contract shared by the
// announcement, event, carousel and poll resources. Defining the contract
// once and instantiating it per model keeps the lifecycles identical: rows
// are archived, never deleted, and archived rows can always be restored.
package content

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/francis-villapando/pulsepoint/internal/database"
)

const activeCacheTTL = 60 * time.Second

// Definition binds one content model into the generic resource service.
// C is the create payload (gin binding tags carry the schema), U the partial
// update payload (pointer fields; nil means "leave unchanged").
type Definition[T any, C any, U any] struct {
	Name        string // singular, for client-facing messages
	Plural      string // plural, for client-facing messages
	CachePrefix string // redis key prefix for the public listing
	ActiveOrder string // SQL ordering of the public listing

	// Preloads are child associations loaded on every read (poll options).
	Preloads []string

	// Build turns a validated create payload into a fresh row. Returning an
	// error surfaces as a 400 (date parsing and the like).
	Build func(in C) (T, error)

	// Apply copies the fields present in a partial update onto the row.
	Apply func(row *T, in U) error
}

// Resource serves list/create/update/archive/restore for one content type.
// Every operation is a single-row, single-statement store mutation; there is
// no multi-step transaction and therefore no partial-failure state.
type Resource[T any, C any, U any] struct {
	def Definition[T, C, U]
}

func NewResource[T any, C any, U any](def Definition[T, C, U]) *Resource[T, C, U] {
	return &Resource[T, C, U]{def: def}
}

// Register wires the resource's route family onto a group. DELETE archives,
// it never deletes; restore is a PUT because it returns the restored row.
func (r *Resource[T, C, U]) Register(rg *gin.RouterGroup, path string) {
	grp := rg.Group(path)
	grp.GET("", r.ListActive)
	grp.GET("/archived", r.ListArchived)
	grp.POST("", r.Create)
	grp.PUT("/:id", r.Update)
	grp.DELETE("/:id", r.Archive)
	grp.PUT("/:id/restore", r.Restore)
}

// ListActive returns every non-archived row in the resource's display order.
// The result is cached briefly; every mutation invalidates it.
func (r *Resource[T, C, U]) ListActive(c *gin.Context) {
	cacheKey := r.def.CachePrefix + ":active"

	var rows []T
	if err := database.CacheGet(cacheKey, &rows); err == nil {
		c.JSON(http.StatusOK, rows)
		return
	}

	if err := r.query().Where("is_archived = ?", false).Order(r.def.ActiveOrder).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch " + r.def.Plural})
		return
	}

	database.CacheSet(cacheKey, rows, activeCacheTTL)

	c.JSON(http.StatusOK, rows)
}

// ListArchived returns archived rows, most recently archived first. Only the
// admin archive view calls this.
func (r *Resource[T, C, U]) ListArchived(c *gin.Context) {
	var rows []T
	if err := r.query().Where("is_archived = ?", true).Order("updated_at DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch archived " + r.def.Plural})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (r *Resource[T, C, U]) Create(c *gin.Context) {
	var in C
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := r.def.Build(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create " + r.def.Name})
		return
	}

	r.invalidateCache()
	c.JSON(http.StatusCreated, row)
}

// Update applies a partial payload; absent fields stay untouched and the
// archive flag is never altered here.
func (r *Resource[T, C, U]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var row T
	if err := r.query().First(&row, "id = ?", id).Error; err != nil {
		r.respondLookupError(c, err)
		return
	}

	var in U
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := r.def.Apply(&row, in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Omit(clause.Associations).Save(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update " + r.def.Name})
		return
	}

	r.invalidateCache()
	c.JSON(http.StatusOK, row)
}

// Archive soft-deletes: the row stays, only the flag flips. Re-archiving an
// archived row succeeds and still advances updatedAt.
func (r *Resource[T, C, U]) Archive(c *gin.Context) {
	if _, ok := r.setArchived(c, true); !ok {
		return
	}
	c.Status(http.StatusNoContent)
}

// Restore flips the flag back and returns the row.
func (r *Resource[T, C, U]) Restore(c *gin.Context) {
	row, ok := r.setArchived(c, false)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, row)
}

func (r *Resource[T, C, U]) setArchived(c *gin.Context, archived bool) (*T, bool) {
	id, ok := parseID(c)
	if !ok {
		return nil, false
	}

	var row T
	if err := r.query().First(&row, "id = ?", id).Error; err != nil {
		r.respondLookupError(c, err)
		return nil, false
	}

	if err := database.DB.Model(&row).Update("is_archived", archived).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update " + r.def.Name})
		return nil, false
	}

	r.invalidateCache()
	return &row, true
}

func (r *Resource[T, C, U]) respondLookupError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": capitalizedName(r.def.Name) + " not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch " + r.def.Name})
}

func (r *Resource[T, C, U]) query() *gorm.DB {
	q := database.DB
	for _, assoc := range r.def.Preloads {
		q = q.Preload(assoc)
	}
	return q
}

// invalidateCache runs before the mutation's response is written. Doing it
// inline keeps a concurrent ListActive from re-caching rows read before the
// mutation committed.
func (r *Resource[T, C, U]) invalidateCache() {
	database.CacheInvalidate(r.def.CachePrefix + "*")
}

func parseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

func capitalizedName(name string) string {
	if name == "" {
		return name
	}
	return string(name[0]-'a'+'A') + name[1:]
}
