package cache

import "fmt"

const (
	cacheProperty = "property:%s"
)

func constructKey(propertyId string) string {
	return fmt.Sprintf(cacheProperty, propertyId)
}
