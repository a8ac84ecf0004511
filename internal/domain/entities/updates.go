package entities

// TicketUpdate is a partial-update descriptor. nil means "leave
// unchanged"; a pointer to the zero value means "remove" where the
// attribute is optional (password, items_left, line_items).
type TicketUpdate struct {
	Subject   *string
	Status    *TicketStatus
	Password  *string
	ItemsLeft *[]string
	LineItems *[]LineItem
	Device    *Device
}

func (u TicketUpdate) Empty() bool {
	return u.Subject == nil && u.Status == nil && u.Password == nil &&
		u.ItemsLeft == nil && u.LineItems == nil && u.Device == nil
}

// CustomerUpdate mirrors TicketUpdate for customers. Email set to the
// empty string removes the attribute.
type CustomerUpdate struct {
	FullName     *string
	Email        *string
	PhoneNumbers *[]PhoneNumber
}

func (u CustomerUpdate) Empty() bool {
	return u.FullName == nil && u.Email == nil && u.PhoneNumbers == nil
}
