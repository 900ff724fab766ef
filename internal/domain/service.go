package domain

// OfferType категория услуги, выбранная в мастере бронирования.
// Центральный сервис идентифицирует категории небольшими целыми id.
type OfferType string

const (
	OfferMaintenance OfferType = "maintenance"
	OfferParts       OfferType = "parts"
	OfferRepair      OfferType = "repair"
)

// BackendID возвращает offerTypeId, который потребляет центральный сервис
func (o OfferType) BackendID() int64 {
	switch o {
	case OfferMaintenance:
		return 1
	case OfferParts:
		return 2
	case OfferRepair:
		return 3
	default:
		return 0
	}
}

// Valid возвращает true для известной категории услуги
func (o OfferType) Valid() bool {
	return o == OfferMaintenance || o == OfferParts || o == OfferRepair
}

// MaintenancePackage пакет планового обслуживания
type MaintenancePackage struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	DurationMinutes int      `json:"durationMinutes"`
	Includes        []string `json:"includes"`
}

// SparePart запасная часть
type SparePart struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	InStock bool    `json:"inStock"`
}

// ServiceSelection выбранная услуга - tagged variant по OfferType:
// maintenance несёт пакет, parts - упорядоченный набор запчастей,
// repair - описание проблемы.
type ServiceSelection struct {
	OfferType          OfferType           `json:"offerType"`
	Package            *MaintenancePackage `json:"servicePackage,omitempty"`
	Parts              []SparePart         `json:"parts,omitempty"`
	ProblemDescription string              `json:"problemDescription,omitempty"`
}

// EstimateDurationMinutes оценивает длительность услуги.
// Используется только для отображения расчётного времени окончания,
// не для проверки конфликтов - авторитетен центральный сервис.
func (s *ServiceSelection) EstimateDurationMinutes() int {
	if s == nil {
		return DefaultServiceDurationMinutes
	}

	switch s.OfferType {
	case OfferMaintenance:
		if s.Package != nil && s.Package.DurationMinutes > 0 {
			return s.Package.DurationMinutes
		}
		return DefaultServiceDurationMinutes
	case OfferParts:
		return PartsBaseDurationMinutes + PartsPerItemMinutes*len(s.Parts)
	case OfferRepair:
		return RepairDurationMinutes
	default:
		return DefaultServiceDurationMinutes
	}
}

// PackageID возвращает идентификатор выбранного пакета обслуживания или nil
func (s *ServiceSelection) PackageID() *int64 {
	if s == nil || s.Package == nil {
		return nil
	}
	id := s.Package.ID
	return &id
}
