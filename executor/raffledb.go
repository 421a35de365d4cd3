package executor

import (
	"bytes"
	"math/big"
	"sort"

	"github.com/33cn/chain33/account"
	"github.com/33cn/chain33/common"
	dbm "github.com/33cn/chain33/common/db"
	"github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"
	pty "github.com/rafflehouse/raffle/types"
)

const (
	ListDESC = int32(0)
	ListASC  = int32(1)

	DefaultCount = int32(20) //默认一次取多少条记录
)

type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
	index        int
}

func NewAction(r *Raffle, tx *types.Transaction, index int) *Action {
	hash := tx.Hash()
	fromaddr := tx.From()

	return &Action{r.GetCoinsAccount(), r.GetStateDB(), hash, fromaddr,
		r.GetBlockTime(), r.GetHeight(), dapp.ExecAddress(string(tx.Execer)), index}
}

func Key(id string) (key []byte) {
	key = append(key, []byte("mavl-"+pty.RaffleX+"-")...)
	key = append(key, []byte(id)...)
	return key
}

func EntryKey(id string, addr string) (key []byte) {
	key = append(key, []byte("mavl-"+pty.RaffleX+"-entry-")...)
	key = append(key, []byte(id+":"+addr)...)
	return key
}

//每个抽奖的奖池托管在独立的合约子账户下
func escrowAddress(raffleId string) string {
	return dapp.ExecAddress(pty.RaffleX + "-" + raffleId)
}

func raffleId(authority string, name string) string {
	return common.ToHex(common.Sha256([]byte(authority + ":" + name)))
}

func readRaffle(db dbm.KV, id string) (*pty.Raffle, error) {
	data, err := db.Get(Key(id))
	if err != nil {
		return nil, err
	}
	var raffle pty.Raffle
	//decode
	err = types.Decode(data, &raffle)
	if err != nil {
		return nil, err
	}
	return &raffle, nil
}

func readEntry(db dbm.KV, id string, addr string) (*pty.RaffleEntry, error) {
	data, err := db.Get(EntryKey(id, addr))
	if err != nil {
		return nil, err
	}
	var entry pty.RaffleEntry
	err = types.Decode(data, &entry)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

//安全批量查询方式,防止因为脏数据导致查询接口奔溃
func GetRaffleList(db dbm.KV, values []string) []*pty.Raffle {
	var raffles []*pty.Raffle
	for _, value := range values {
		raffle, err := readRaffle(db, value)
		if err != nil {
			continue
		}
		raffles = append(raffles, raffle)
	}
	return raffles
}

func (action *Action) checkExecAccountBalance(fromAddr string, toPay int64) bool {
	acc := action.coinsAccount.LoadExecAccount(fromAddr, action.execaddr)
	return acc.GetBalance() >= toPay
}

func (action *Action) getIndex() int64 {
	return action.height*types.MaxTxsPerBlock + int64(action.index)
}

func (action *Action) saveRaffle(raffle *pty.Raffle) (kvset []*types.KeyValue) {
	value := types.Encode(raffle)
	action.db.Set(Key(raffle.RaffleId), value)
	kvset = append(kvset, &types.KeyValue{Key: Key(raffle.RaffleId), Value: value})
	return kvset
}

func (action *Action) saveEntry(entry *pty.RaffleEntry) (kvset []*types.KeyValue) {
	value := types.Encode(entry)
	action.db.Set(EntryKey(entry.RaffleId, entry.Buyer), value)
	kvset = append(kvset, &types.KeyValue{Key: EntryKey(entry.RaffleId, entry.Buyer), Value: value})
	return kvset
}

func (action *Action) readRaffle(id string) (*pty.Raffle, error) {
	return readRaffle(action.db, id)
}

//在有序票段中定位持有者，未命中说明分配索引被破坏
func findSegment(segments []*pty.TicketSegment, ticket int64) *pty.TicketSegment {
	i := sort.Search(len(segments), func(i int) bool {
		return segments[i].Start+segments[i].Count > ticket
	})
	if i < len(segments) && segments[i].Start <= ticket && ticket < segments[i].Start+segments[i].Count {
		return segments[i]
	}
	return nil
}

func containsTicket(ranges []*pty.TicketRange, ticket int64) bool {
	i := sort.Search(len(ranges), func(i int) bool {
		return ranges[i].Start+ranges[i].Count > ticket
	})
	return i < len(ranges) && ranges[i].Start <= ticket && ticket < ranges[i].Start+ranges[i].Count
}

//平台抽成向下取整，余下归接收方
func splitFee(gross int64) (net int64, fee int64) {
	fee = gross * pty.FeeRatePercent / 100
	net = gross - fee
	return
}

func (action *Action) RaffleCreate(create *pty.RaffleCreate) (*types.Receipt, error) {
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue

	if len(create.Name) == 0 || create.TicketPrice < 0 || create.MinPot < 0 {
		return nil, types.ErrInvalidParam
	}
	if len(create.Name) > pty.MaxNameLen {
		llog.Error("RaffleCreate", "addr", action.fromaddr, "execaddr", action.execaddr, "name", create.Name,
			"err", pty.ErrRaffleNameTooLong)
		return nil, pty.ErrRaffleNameTooLong
	}
	if create.TicketPrice == 0 {
		llog.Error("RaffleCreate", "addr", action.fromaddr, "execaddr", action.execaddr,
			"err", pty.ErrRaffleInvalidTicketPrice)
		return nil, pty.ErrRaffleInvalidTicketPrice
	}
	if create.MaxPerWallet <= 0 {
		llog.Error("RaffleCreate", "addr", action.fromaddr, "execaddr", action.execaddr,
			"err", pty.ErrRaffleInvalidMaxPerWallet)
		return nil, pty.ErrRaffleInvalidMaxPerWallet
	}
	if create.EndTime <= action.blocktime {
		llog.Error("RaffleCreate", "addr", action.fromaddr, "execaddr", action.execaddr, "endTime", create.EndTime,
			"blocktime", action.blocktime, "err", pty.ErrRaffleInvalidEndTime)
		return nil, pty.ErrRaffleInvalidEndTime
	}

	id := raffleId(action.fromaddr, create.Name)
	_, err := action.readRaffle(id)
	if err == nil {
		llog.Error("RaffleCreate", "addr", action.fromaddr, "execaddr", action.execaddr, "id", id,
			"err", pty.ErrRaffleRepeatName)
		return nil, pty.ErrRaffleRepeatName
	} else if err != types.ErrNotFound {
		return nil, err
	}

	raffle := &pty.Raffle{
		RaffleId:     id,
		Name:         create.Name,
		Authority:    action.fromaddr,
		TicketPrice:  create.TicketPrice,
		MaxPerWallet: create.MaxPerWallet,
		MinPot:       create.MinPot,
		EndTime:      create.EndTime,
		CreateTime:   action.blocktime,
		Status:       pty.RaffleStatusActive,
		Index:        action.getIndex(),
	}

	rlog := &pty.ReceiptRaffle{
		RaffleId: raffle.RaffleId,
		Status:   raffle.Status,
		Addr:     action.fromaddr,
		Index:    raffle.Index,
	}
	logs = append(logs, &types.ReceiptLog{Ty: pty.TyLogRaffleCreate, Log: types.Encode(rlog)})
	kv = append(kv, action.saveRaffle(raffle)...)

	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

func (action *Action) RaffleBuy(buy *pty.RaffleBuy) (*types.Receipt, error) {
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue

	raffle, err := action.readRaffle(buy.GetRaffleId())
	if err != nil {
		llog.Error("RaffleBuy", "addr", action.fromaddr, "execaddr", action.execaddr, "get raffle failed",
			buy.GetRaffleId(), "err", err)
		return nil, err
	}

	if raffle.Status != pty.RaffleStatusActive {
		llog.Error("RaffleBuy", "addr", action.fromaddr, "execaddr", action.execaddr, "id", raffle.RaffleId,
			"status", raffle.Status, "err", pty.ErrRaffleStatus)
		return nil, pty.ErrRaffleStatus
	}
	if action.blocktime >= raffle.EndTime {
		llog.Error("RaffleBuy", "addr", action.fromaddr, "execaddr", action.execaddr, "id", raffle.RaffleId,
			"blocktime", action.blocktime, "endTime", raffle.EndTime, "err", pty.ErrRaffleClosed)
		return nil, pty.ErrRaffleClosed
	}
	if buy.NumTickets <= 0 {
		llog.Error("RaffleBuy", "addr", action.fromaddr, "execaddr", action.execaddr, "id", raffle.RaffleId,
			"numTickets", buy.NumTickets, "err", pty.ErrRaffleInvalidTicketNum)
		return nil, pty.ErrRaffleInvalidTicketNum
	}

	entry, err := readEntry(action.db, raffle.RaffleId, action.fromaddr)
	if err != nil && err != types.ErrNotFound {
		return nil, err
	}
	if entry == nil {
		entry = &pty.RaffleEntry{
			RaffleId: raffle.RaffleId,
			Buyer:    action.fromaddr,
		}
	}
	if entry.NumTickets+buy.NumTickets > raffle.MaxPerWallet {
		llog.Error("RaffleBuy", "addr", action.fromaddr, "execaddr", action.execaddr, "id", raffle.RaffleId,
			"owned", entry.NumTickets, "buy", buy.NumTickets, "max", raffle.MaxPerWallet,
			"err", pty.ErrRaffleMaxTicketsExceeded)
		return nil, pty.ErrRaffleMaxTicketsExceeded
	}

	gross := buy.NumTickets * raffle.TicketPrice
	if !action.checkExecAccountBalance(action.fromaddr, gross) {
		llog.Error("RaffleBuy", "addr", action.fromaddr, "execaddr", action.execaddr, "id", raffle.RaffleId,
			"amount", gross, "err", types.ErrNoBalance)
		return nil, types.ErrNoBalance
	}

	receipt, err := action.coinsAccount.ExecTransfer(action.fromaddr, escrowAddress(raffle.RaffleId), action.execaddr, gross)
	if err != nil {
		llog.Error("RaffleBuy.ExecTransfer", "addr", action.fromaddr, "execaddr", action.execaddr,
			"amount", gross, "err", err)
		return nil, err
	}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)

	start := raffle.TotalTickets

	//同一买家的相邻票段合并
	n := len(raffle.Segments)
	if n > 0 && raffle.Segments[n-1].Buyer == action.fromaddr {
		raffle.Segments[n-1].Count += buy.NumTickets
	} else {
		raffle.Segments = append(raffle.Segments, &pty.TicketSegment{Start: start, Count: buy.NumTickets, Buyer: action.fromaddr})
	}

	m := len(entry.Ranges)
	if m > 0 && entry.Ranges[m-1].Start+entry.Ranges[m-1].Count == start {
		entry.Ranges[m-1].Count += buy.NumTickets
	} else {
		entry.Ranges = append(entry.Ranges, &pty.TicketRange{Start: start, Count: buy.NumTickets})
	}
	entry.NumTickets += buy.NumTickets

	raffle.TotalTickets += buy.NumTickets
	raffle.TotalPot += gross
	raffle.PrevStatus = raffle.Status
	raffle.PrevIndex = raffle.Index
	raffle.Index = action.getIndex()

	rlog := &pty.ReceiptRaffle{
		RaffleId:   raffle.RaffleId,
		Status:     raffle.Status,
		PrevStatus: raffle.PrevStatus,
		Addr:       action.fromaddr,
		Index:      raffle.Index,
		PrevIndex:  raffle.PrevIndex,
		NumTickets: buy.NumTickets,
		Amount:     gross,
	}
	logs = append(logs, &types.ReceiptLog{Ty: pty.TyLogRaffleBuy, Log: types.Encode(rlog)})
	kv = append(kv, action.saveEntry(entry)...)
	kv = append(kv, action.saveRaffle(raffle)...)

	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

func (action *Action) RaffleCommitDraw(commit *pty.RaffleCommitDraw) (*types.Receipt, error) {
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue

	raffle, err := action.readRaffle(commit.GetRaffleId())
	if err != nil {
		llog.Error("RaffleCommitDraw", "addr", action.fromaddr, "execaddr", action.execaddr, "get raffle failed",
			commit.GetRaffleId(), "err", err)
		return nil, err
	}

	if action.fromaddr != raffle.Authority {
		llog.Error("RaffleCommitDraw", "addr", action.fromaddr, "execaddr", action.execaddr, "id", raffle.RaffleId,
			"authority", raffle.Authority, "err", pty.ErrRaffleNoPrivilege)
		return nil, pty.ErrRaffleNoPrivilege
	}
	if raffle.Status != pty.RaffleStatusActive {
		llog.Error("RaffleCommitDraw", "addr", action.fromaddr, "execaddr", action.execaddr, "id", raffle.RaffleId,
			"status", raffle.Status, "err", pty.ErrRaffleStatus)
		return nil, pty.ErrRaffleStatus
	}
	if action.blocktime < raffle.EndTime {
		llog.Error("RaffleCommitDraw", "addr", action.fromaddr, "execaddr", action.execaddr, "id", raffle.RaffleId,
			"blocktime", action.blocktime, "endTime", raffle.EndTime, "err", pty.ErrRaffleNotEnded)
		return nil, pty.ErrRaffleNotEnded
	}
	if raffle.TotalTickets == 0 {
		llog.Error("RaffleCommitDraw", "addr", action.fromaddr, "execaddr", action.execaddr, "id", raffle.RaffleId,
			"err", pty.ErrRaffleNoTickets)
		return nil, pty.ErrRaffleNoTickets
	}
	if len(commit.Commitment) != pty.CommitmentLen {
		llog.Error("RaffleCommitDraw", "addr", action.fromaddr, "execaddr", action.execaddr, "id", raffle.RaffleId,
			"commitmentLen", len(commit.Commitment), "err", pty.ErrRaffleCommitment)
		return nil, pty.ErrRaffleCommitment
	}

	raffle.Commitment = commit.Commitment
	raffle.PrevStatus = raffle.Status
	raffle.Status = pty.RaffleStatusDrawCommitted
	raffle.PrevIndex = raffle.Index
	raffle.Index = action.getIndex()

	rlog := &pty.ReceiptRaffle{
		RaffleId:   raffle.RaffleId,
		Status:     raffle.Status,
		PrevStatus: raffle.PrevStatus,
		Addr:       action.fromaddr,
		Index:      raffle.Index,
		PrevIndex:  raffle.PrevIndex,
	}
	logs = append(logs, &types.ReceiptLog{Ty: pty.TyLogRaffleCommitDraw, Log: types.Encode(rlog)})
	kv = append(kv, action.saveRaffle(raffle)...)

	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

func (action *Action) RaffleSettleDraw(settle *pty.RaffleSettleDraw) (*types.Receipt, error) {
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue

	raffle, err := action.readRaffle(settle.GetRaffleId())
	if err != nil {
		llog.Error("RaffleSettleDraw", "addr", action.fromaddr, "execaddr", action.execaddr, "get raffle failed",
			settle.GetRaffleId(), "err", err)
		return nil, err
	}

	if action.fromaddr != raffle.Authority {
		llog.Error("RaffleSettleDraw", "addr", action.fromaddr, "execaddr", action.execaddr, "id", raffle.RaffleId,
			"authority", raffle.Authority, "err", pty.ErrRaffleNoPrivilege)
		return nil, pty.ErrRaffleNoPrivilege
	}
	if raffle.Status != pty.RaffleStatusDrawCommitted {
		llog.Error("RaffleSettleDraw", "addr", action.fromaddr, "execaddr", action.execaddr, "id", raffle.RaffleId,
			"status", raffle.Status, "err", pty.ErrRaffleStatus)
		return nil, pty.ErrRaffleStatus
	}
	if len(settle.Randomness) == 0 {
		return nil, types.ErrInvalidParam
	}
	if !bytes.Equal(common.Sha256(settle.Randomness), raffle.Commitment) {
		llog.Error("RaffleSettleDraw", "addr", action.fromaddr, "execaddr", action.execaddr, "id", raffle.RaffleId,
			"err", pty.ErrRaffleRandomMismatch)
		return nil, pty.ErrRaffleRandomMismatch
	}

	//随机数全量折叠取模，不截断
	winning := new(big.Int).Mod(new(big.Int).SetBytes(settle.Randomness), big.NewInt(raffle.TotalTickets)).Int64()
	seg := findSegment(raffle.Segments, winning)
	if seg == nil {
		llog.Error("RaffleSettleDraw", "addr", action.fromaddr, "execaddr", action.execaddr, "id", raffle.RaffleId,
			"winning", winning, "err", pty.ErrRaffleInternal)
		return nil, pty.ErrRaffleInternal
	}

	raffle.Randomness = settle.Randomness
	raffle.WinningTicket = winning
	raffle.PrevStatus = raffle.Status
	raffle.Status = pty.RaffleStatusDrawComplete
	raffle.PrevIndex = raffle.Index
	raffle.Index = action.getIndex()

	rlog := &pty.ReceiptRaffle{
		RaffleId:      raffle.RaffleId,
		Status:        raffle.Status,
		PrevStatus:    raffle.PrevStatus,
		Addr:          action.fromaddr,
		Index:         raffle.Index,
		PrevIndex:     raffle.PrevIndex,
		WinningTicket: winning,
	}
	logs = append(logs, &types.ReceiptLog{Ty: pty.TyLogRaffleSettleDraw, Log: types.Encode(rlog)})
	kv = append(kv, action.saveRaffle(raffle)...)

	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

func (action *Action) RaffleClaim(claim *pty.RaffleClaim) (*types.Receipt, error) {
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue

	raffle, err := action.readRaffle(claim.GetRaffleId())
	if err != nil {
		llog.Error("RaffleClaim", "addr", action.fromaddr, "execaddr", action.execaddr, "get raffle failed",
			claim.GetRaffleId(), "err", err)
		return nil, err
	}

	if raffle.Status != pty.RaffleStatusDrawComplete {
		llog.Error("RaffleClaim", "addr", action.fromaddr, "execaddr", action.execaddr, "id", raffle.RaffleId,
			"status", raffle.Status, "err", pty.ErrRaffleStatus)
		return nil, pty.ErrRaffleStatus
	}

	entry, err := readEntry(action.db, raffle.RaffleId, action.fromaddr)
	if err == types.ErrNotFound {
		llog.Error("RaffleClaim", "addr", action.fromaddr, "execaddr", action.execaddr, "id", raffle.RaffleId,
			"err", pty.ErrRaffleNotWinner)
		return nil, pty.ErrRaffleNotWinner
	} else if err != nil {
		return nil, err
	}
	if !containsTicket(entry.Ranges, raffle.WinningTicket) {
		llog.Error("RaffleClaim", "addr", action.fromaddr, "execaddr", action.execaddr, "id", raffle.RaffleId,
			"winningTicket", raffle.WinningTicket, "err", pty.ErrRaffleNotWinner)
		return nil, pty.ErrRaffleNotWinner
	}

	prize, fee := splitFee(raffle.TotalPot)
	escrow := escrowAddress(raffle.RaffleId)

	receipt, err := action.coinsAccount.ExecTransfer(escrow, action.fromaddr, action.execaddr, prize)
	if err != nil {
		llog.Error("RaffleClaim.ExecTransfer", "addr", action.fromaddr, "execaddr", action.execaddr,
			"amount", prize, "err", err)
		return nil, err
	}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)

	if fee > 0 {
		receipt, err = action.coinsAccount.ExecTransfer(escrow, action.execaddr, action.execaddr, fee)
		if err != nil {
			action.coinsAccount.ExecTransfer(action.fromaddr, escrow, action.execaddr, prize) // rollback
			llog.Error("RaffleClaim.ExecTransfer", "addr", action.execaddr, "execaddr", action.execaddr,
				"amount", fee, "err", err)
			return nil, err
		}
		logs = append(logs, receipt.Logs...)
		kv = append(kv, receipt.KV...)
	}

	raffle.Winner = action.fromaddr
	raffle.PrevStatus = raffle.Status
	raffle.Status = pty.RaffleStatusClaimed
	raffle.PrevIndex = raffle.Index
	raffle.Index = action.getIndex()

	rlog := &pty.ReceiptRaffle{
		RaffleId:      raffle.RaffleId,
		Status:        raffle.Status,
		PrevStatus:    raffle.PrevStatus,
		Addr:          action.fromaddr,
		Index:         raffle.Index,
		PrevIndex:     raffle.PrevIndex,
		Amount:        prize,
		Fee:           fee,
		WinningTicket: raffle.WinningTicket,
		Winner:        raffle.Winner,
	}
	logs = append(logs, &types.ReceiptLog{Ty: pty.TyLogRaffleClaim, Log: types.Encode(rlog)})
	kv = append(kv, action.saveRaffle(raffle)...)

	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

func (action *Action) RaffleRefund(refund *pty.RaffleRefund) (*types.Receipt, error) {
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue

	raffle, err := action.readRaffle(refund.GetRaffleId())
	if err != nil {
		llog.Error("RaffleRefund", "addr", action.fromaddr, "execaddr", action.execaddr, "get raffle failed",
			refund.GetRaffleId(), "err", err)
		return nil, err
	}

	if raffle.Status != pty.RaffleStatusCancelled {
		llog.Error("RaffleRefund", "addr", action.fromaddr, "execaddr", action.execaddr, "id", raffle.RaffleId,
			"status", raffle.Status, "err", pty.ErrRaffleStatus)
		return nil, pty.ErrRaffleStatus
	}

	//管理地址可代任意买家发起退款，款项始终退给买家本人
	buyer := refund.GetAddr()
	if buyer == "" {
		buyer = action.fromaddr
	} else if buyer != action.fromaddr && action.fromaddr != raffle.Authority {
		llog.Error("RaffleRefund", "addr", action.fromaddr, "execaddr", action.execaddr, "id", raffle.RaffleId,
			"buyer", buyer, "err", pty.ErrRaffleNoPrivilege)
		return nil, pty.ErrRaffleNoPrivilege
	}

	entry, err := readEntry(action.db, raffle.RaffleId, buyer)
	if err == types.ErrNotFound {
		llog.Error("RaffleRefund", "addr", action.fromaddr, "execaddr", action.execaddr, "id", raffle.RaffleId,
			"err", pty.ErrRaffleNoEntry)
		return nil, pty.ErrRaffleNoEntry
	} else if err != nil {
		return nil, err
	}
	if entry.Refunded {
		llog.Error("RaffleRefund", "addr", action.fromaddr, "execaddr", action.execaddr, "id", raffle.RaffleId,
			"err", pty.ErrRaffleAlreadyRefunded)
		return nil, pty.ErrRaffleAlreadyRefunded
	}

	gross := entry.NumTickets * raffle.TicketPrice
	net, fee := splitFee(gross)
	escrow := escrowAddress(raffle.RaffleId)

	receipt, err := action.coinsAccount.ExecTransfer(escrow, buyer, action.execaddr, net)
	if err != nil {
		llog.Error("RaffleRefund.ExecTransfer", "addr", buyer, "execaddr", action.execaddr,
			"amount", net, "err", err)
		return nil, err
	}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)

	if fee > 0 {
		receipt, err = action.coinsAccount.ExecTransfer(escrow, action.execaddr, action.execaddr, fee)
		if err != nil {
			action.coinsAccount.ExecTransfer(buyer, escrow, action.execaddr, net) // rollback
			llog.Error("RaffleRefund.ExecTransfer", "addr", action.execaddr, "execaddr", action.execaddr,
				"amount", fee, "err", err)
			return nil, err
		}
		logs = append(logs, receipt.Logs...)
		kv = append(kv, receipt.KV...)
	}

	entry.Refunded = true

	rlog := &pty.ReceiptRaffle{
		RaffleId:   raffle.RaffleId,
		Status:     raffle.Status,
		Addr:       buyer,
		Index:      raffle.Index,
		PrevIndex:  raffle.Index,
		NumTickets: entry.NumTickets,
		Amount:     net,
		Fee:        fee,
	}
	logs = append(logs, &types.ReceiptLog{Ty: pty.TyLogRaffleRefund, Log: types.Encode(rlog)})
	kv = append(kv, action.saveEntry(entry)...)

	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

func (action *Action) RaffleCancel(cancel *pty.RaffleCancel) (*types.Receipt, error) {
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue

	raffle, err := action.readRaffle(cancel.GetRaffleId())
	if err != nil {
		llog.Error("RaffleCancel", "addr", action.fromaddr, "execaddr", action.execaddr, "get raffle failed",
			cancel.GetRaffleId(), "err", err)
		return nil, err
	}

	if action.fromaddr != raffle.Authority {
		llog.Error("RaffleCancel", "addr", action.fromaddr, "execaddr", action.execaddr, "id", raffle.RaffleId,
			"authority", raffle.Authority, "err", pty.ErrRaffleCannotCancel)
		return nil, pty.ErrRaffleCannotCancel
	}
	if raffle.Status != pty.RaffleStatusActive {
		llog.Error("RaffleCancel", "addr", action.fromaddr, "execaddr", action.execaddr, "id", raffle.RaffleId,
			"status", raffle.Status, "err", pty.ErrRaffleCannotCancel)
		return nil, pty.ErrRaffleCannotCancel
	}

	raffle.PrevStatus = raffle.Status
	raffle.Status = pty.RaffleStatusCancelled
	raffle.PrevIndex = raffle.Index
	raffle.Index = action.getIndex()

	rlog := &pty.ReceiptRaffle{
		RaffleId:   raffle.RaffleId,
		Status:     raffle.Status,
		PrevStatus: raffle.PrevStatus,
		Addr:       action.fromaddr,
		Index:      raffle.Index,
		PrevIndex:  raffle.PrevIndex,
	}
	logs = append(logs, &types.ReceiptLog{Ty: pty.TyLogRaffleCancel, Log: types.Encode(rlog)})
	kv = append(kv, action.saveRaffle(raffle)...)

	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}
