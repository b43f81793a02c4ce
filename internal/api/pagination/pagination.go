package pagination

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const DefaultPageSize = 10

// Envelope is the wrapper every list endpoint returns.
type Envelope struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

func params(c *gin.Context) (page int, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	size, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(DefaultPageSize)))
	if size < 1 {
		size = DefaultPageSize
	}
	return page, size
}

func pageURL(c *gin.Context, page int) *string {
	u := *c.Request.URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	full := fmt.Sprintf("%s://%s%s", scheme, c.Request.Host, u.RequestURI())
	return &full
}

// Paginate counts the query, loads the requested page into out and builds the
// envelope. The query is re-run per call, so the count always reflects the
// current row set.
func Paginate(c *gin.Context, q *gorm.DB, out interface{}) (*Envelope, error) {
	page, size := params(c)

	var count int64
	if err := q.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * size
	if err := q.Session(&gorm.Session{}).Offset(offset).Limit(size).Find(out).Error; err != nil {
		return nil, err
	}

	env := &Envelope{Count: count, Results: out}
	if int64(offset+size) < count {
		env.Next = pageURL(c, page+1)
	}
	if page > 1 {
		env.Previous = pageURL(c, page-1)
	}
	return env, nil
}
