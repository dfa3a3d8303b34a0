package create_reservation

import (
	"time"

	"github.com/m04kA/BIM-AvailabilityService/pkg/types"
)

// Request модель запроса на создание резервации
type Request struct {
	ClientName  string           // Имя клиента
	ClientEmail string           // Email клиента
	Date        time.Time        // Дата резервации (без времени)
	Time        types.TimeString // Время слота (например, "10:00")
	ServiceName string           // Название услуги
	Notes       *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной резервацией
type Response struct {
	ID          int64            // ID созданной резервации
	ClientName  string           // Имя клиента
	ClientEmail string           // Email клиента
	Date        time.Time        // Дата резервации
	Time        types.TimeString // Время слота
	ServiceName string           // Название услуги
	Notes       *string          // Заметки
	Status      string           // Статус резервации

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
