package aggregate

// GroupBy определяет ключ группировки аккумуляторов
type GroupBy string

const (
	GroupByHour    GroupBy = "hour"
	GroupByWeekday GroupBy = "weekday"
	GroupByType    GroupBy = "type"
)

// keyKind дискриминатор BucketKey
type keyKind uint8

const (
	kindHour keyKind = iota
	kindWeekday
	kindType
)

// BucketKey тегированный ключ аккумулятора: час 0-23, день недели 0=Mon..6=Sun
// или тип ресурса. Сравним, поэтому используется как ключ map напрямую.
type BucketKey struct {
	kind    keyKind
	hour    int
	weekday int
	rtype   string
}

// HourKey возвращает ключ для часа суток 0-23
func HourKey(hour int) BucketKey {
	return BucketKey{kind: kindHour, hour: hour}
}

// WeekdayKey возвращает ключ для дня недели 0=Mon..6=Sun
func WeekdayKey(weekday int) BucketKey {
	return BucketKey{kind: kindWeekday, weekday: weekday}
}

// TypeKey возвращает ключ для типа ресурса
func TypeKey(resourceType string) BucketKey {
	return BucketKey{kind: kindType, rtype: resourceType}
}

// Bucket аккумулятор ресурсо-минут по одному ключу группировки
// Живёт только в течение одного вызова агрегации
type Bucket struct {
	BookedMin      float64 // забронированные ресурсо-минуты
	AvailMin       float64 // доступные ресурсо-минуты
	Bookings       int     // количество бронирований
	ResourcesCount int     // количество ресурсов (заполняется при группировке по типу)
}

// Buckets набор аккумуляторов, ключи создаются лениво при первом обращении
type Buckets map[BucketKey]*Bucket

// NewBuckets создает пустой набор аккумуляторов
func NewBuckets() Buckets {
	return make(Buckets)
}

// At возвращает аккумулятор по ключу, создавая его при первом обращении
func (b Buckets) At(key BucketKey) *Bucket {
	bucket, ok := b[key]
	if !ok {
		bucket = &Bucket{}
		b[key] = bucket
	}
	return bucket
}

// Get возвращает аккумулятор по ключу без создания
// Отсутствующий ключ дает нулевой аккумулятор
func (b Buckets) Get(key BucketKey) Bucket {
	if bucket, ok := b[key]; ok {
		return *bucket
	}
	return Bucket{}
}
