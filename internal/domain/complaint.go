package domain

import "time"

// Department is the classification tag assigned to a complaint.
type Department string

// Department values, in classification priority order.
const (
	DepartmentSeguridad Department = "seguridad"
	DepartmentObras     Department = "obras"
	DepartmentAmbiente  Department = "ambiente"
	DepartmentOtro      Department = "otro"
)

// ComplaintStatus tracks the handling state of a complaint. Only the
// initial state is assigned here; later transitions belong to the
// back-office tooling.
type ComplaintStatus string

const (
	StatusPendiente ComplaintStatus = "pendiente"
	StatusEnCurso   ComplaintStatus = "en_curso"
	StatusResuelto  ComplaintStatus = "resuelto"
)

// Complaint is a citizen complaint as stored in the document database.
type Complaint struct {
	ComplaintID string          `bson:"complaintId" json:"complaintId"`
	Name        string          `bson:"name" json:"name"`
	Email       string          `bson:"email" json:"email"`
	Description string          `bson:"description" json:"description"`
	Department  Department      `bson:"department" json:"department"`
	Status      ComplaintStatus `bson:"status" json:"status"`
	CreatedAt   time.Time       `bson:"createdAt" json:"createdAt"`
}
