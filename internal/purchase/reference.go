package purchase

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// GenerateReference: PR + unix-millis'in son 6 hanesi + 3 haneli rastgele ek.
// Tek başına benzersizlik garantisi vermez; reference üzerindeki unique index
// nadir çakışmaları CONFLICT olarak yüzeye çıkarır.
func GenerateReference() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	ts = ts[len(ts)-6:]
	return fmt.Sprintf("PR%s%03d", ts, rand.Intn(1000))
}
