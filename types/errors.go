package types

import "errors"

var (
	ErrRaffleRepeatName          = errors.New("ErrRaffleRepeatName")
	ErrRaffleNameTooLong         = errors.New("ErrRaffleNameTooLong")
	ErrRaffleInvalidEndTime      = errors.New("ErrRaffleInvalidEndTime")
	ErrRaffleInvalidTicketPrice  = errors.New("ErrRaffleInvalidTicketPrice")
	ErrRaffleInvalidMaxPerWallet = errors.New("ErrRaffleInvalidMaxPerWallet")
	ErrRaffleStatus              = errors.New("ErrRaffleStatus")
	ErrRaffleClosed              = errors.New("ErrRaffleClosed")
	ErrRaffleInvalidTicketNum    = errors.New("ErrRaffleInvalidTicketNum")
	ErrRaffleMaxTicketsExceeded  = errors.New("ErrRaffleMaxTicketsExceeded")
	ErrRaffleNotEnded            = errors.New("ErrRaffleNotEnded")
	ErrRaffleNoTickets           = errors.New("ErrRaffleNoTickets")
	ErrRaffleCommitment          = errors.New("ErrRaffleCommitment")
	ErrRaffleRandomMismatch      = errors.New("ErrRaffleRandomMismatch")
	ErrRaffleNotWinner           = errors.New("ErrRaffleNotWinner")
	ErrRaffleNoEntry             = errors.New("ErrRaffleNoEntry")
	ErrRaffleAlreadyRefunded     = errors.New("ErrRaffleAlreadyRefunded")
	ErrRaffleCannotCancel        = errors.New("ErrRaffleCannotCancel")
	ErrRaffleNoPrivilege         = errors.New("ErrRaffleNoPrivilege")
	ErrRaffleInternal            = errors.New("ErrRaffleInternal")
)
