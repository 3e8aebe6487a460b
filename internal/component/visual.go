package component

// Fade - затухающая декоративная сущность: поднимается и теряет прозрачность каждый тик.
type Fade struct {
	Alpha     float64 // 0..255, только убывает
	FadeSpeed float64 // Потеря прозрачности за тик
	RiseSpeed float64 // Подъём за тик
}
