package types

//raw tx构造参数，Jrpc接口使用
type RaffleCreateTx struct {
	Name         string `json:"name"`
	TicketPrice  int64  `json:"ticketPrice"`
	MaxPerWallet int64  `json:"maxPerWallet"`
	EndTime      int64  `json:"endTime"`
	MinPot       int64  `json:"minPot"`
	Fee          int64  `json:"fee"`
}

type RaffleBuyTx struct {
	RaffleId   string `json:"raffleId"`
	NumTickets int64  `json:"numTickets"`
	Fee        int64  `json:"fee"`
}

type RaffleCommitDrawTx struct {
	RaffleId string `json:"raffleId"`
	//十六进制的sha256承诺
	Commitment string `json:"commitment"`
	Fee        int64  `json:"fee"`
}

type RaffleSettleDrawTx struct {
	RaffleId string `json:"raffleId"`
	//十六进制的随机数原文
	Randomness string `json:"randomness"`
	Fee        int64  `json:"fee"`
}

type RaffleClaimTx struct {
	RaffleId string `json:"raffleId"`
	Fee      int64  `json:"fee"`
}

type RaffleRefundTx struct {
	RaffleId string `json:"raffleId"`
	//可选，管理地址代买家退款时指定买家地址
	Addr string `json:"addr"`
	Fee  int64  `json:"fee"`
}

type RaffleCancelTx struct {
	RaffleId string `json:"raffleId"`
	Fee      int64  `json:"fee"`
}
