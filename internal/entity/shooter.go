package entity

// GetShooter возвращает сущность, в конечном счёте ответственную за снаряд.
// Если e не снаряд, возвращается сама e.
func GetShooter(e *Entity) *Entity {
	shooter, _ := ResolveShooter(e)
	return shooter
}

// ResolveShooter проходит цепочку "снаряд -> источник" и возвращает конечную
// сущность вместе с числом пройденных звеньев.
//
// Обход останавливается, когда:
//   - текущая сущность не снаряд;
//   - источник не сущность (блок-раздатчик) или не задан;
//   - источник совпадает с самим снарядом.
//
// Длина цепочки не ограничена. Замкнутые цепочки длиннее одного звена
// распознаются алгоритмом Брента без дополнительной памяти, обход
// завершается на сущности, где цикл был обнаружен.
func ResolveShooter(e *Entity) (*Entity, int) {
	current := e
	hops := 0

	tortoise := e
	power, steps := 1, 0

	for current.Is(CapProjectile) {
		source, ok := current.Shooter.(*Entity)
		if !ok || source == nil || source == current {
			return current, hops
		}

		current = source
		hops++

		if current == tortoise {
			return current, hops
		}

		steps++
		if steps == power {
			tortoise = current
			power *= 2
			steps = 0
		}
	}

	return current, hops
}
