package service

// DeletionPolicy tells the caller how a product deletion was resolved:
// products already referenced by sale lines are deactivated to keep history
// intact, unreferenced ones are removed for real.
type DeletionPolicy string

const (
	DeletionSoft DeletionPolicy = "DESACTIVADO"
	DeletionHard DeletionPolicy = "ELIMINADO"
)
