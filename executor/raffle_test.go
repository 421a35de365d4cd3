package executor

import (
	"testing"

	"github.com/stretchr/testify/suite"

	apimocks "github.com/33cn/chain33/client/mocks"
	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/common/address"
	"github.com/33cn/chain33/common/crypto"
	"github.com/33cn/chain33/common/db"
	"github.com/33cn/chain33/common/db/mocks"
	"github.com/33cn/chain33/types"
	pty "github.com/rafflehouse/raffle/types"

	_ "github.com/33cn/chain33/system/consensus/init"
	_ "github.com/33cn/chain33/system/crypto/init"
	_ "github.com/33cn/chain33/system/dapp/init"
	_ "github.com/33cn/chain33/system/mempool/init"
	_ "github.com/33cn/chain33/system/store/init"
)

var testCfg *types.Chain33Config

func init() {
	testCfg = types.NewChain33Config(types.GetDefaultCfgstring())
	Init(pty.RaffleX, testCfg, nil)
}

var (
	privAuthority = getprivkey("CC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944")
	privBuyerA    = getprivkey("BC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944")
	privBuyerB    = getprivkey("AC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944")
	privStranger  = getprivkey("9C38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944")

	addrAuthority = addressOf(privAuthority)
	addrBuyerA    = addressOf(privBuyerA)
	addrBuyerB    = addressOf(privBuyerB)
	addrStranger  = addressOf(privStranger)
)

func getprivkey(key string) crypto.PrivKey {
	cr, err := crypto.New(types.GetSignName("", types.SECP256K1))
	if err != nil {
		panic(err)
	}
	bkey, err := common.FromHex(key)
	if err != nil {
		panic(err)
	}
	priv, err := cr.PrivKeyFromBytes(bkey)
	if err != nil {
		panic(err)
	}
	return priv
}

func addressOf(priv crypto.PrivKey) string {
	return address.PubKeyToAddress(priv.PubKey().Bytes()).String()
}

func newTestDriver(stateDB db.DB, kvdb *mocks.KVDB) *Raffle {
	api := new(apimocks.QueueProtocolAPI)
	api.On("GetConfig").Return(testCfg)

	r := newRaffle().(*Raffle)
	r.SetAPI(api)
	r.SetStateDB(stateDB)
	r.SetLocalDB(kvdb)
	r.SetEnv(10, 100, 1)
	return r
}

func newRaffleTx(action *pty.RaffleAction, priv crypto.PrivKey, nonce int64) *types.Transaction {
	tx := &types.Transaction{
		Execer:  []byte(pty.RaffleX),
		Payload: types.Encode(action),
		Nonce:   nonce,
		To:      address.ExecAddress(pty.RaffleX),
	}
	tx.Sign(types.SECP256K1, priv)
	return tx
}

func createAction(name string, price, maxPerWallet, endTime, minPot int64) *pty.RaffleAction {
	return &pty.RaffleAction{
		Ty: pty.RaffleActionCreate,
		Value: &pty.RaffleAction_Create{Create: &pty.RaffleCreate{
			Name:         name,
			TicketPrice:  price,
			MaxPerWallet: maxPerWallet,
			EndTime:      endTime,
			MinPot:       minPot,
		}},
	}
}

func buyAction(id string, num int64) *pty.RaffleAction {
	return &pty.RaffleAction{
		Ty:    pty.RaffleActionBuy,
		Value: &pty.RaffleAction_Buy{Buy: &pty.RaffleBuy{RaffleId: id, NumTickets: num}},
	}
}

func commitAction(id string, commitment []byte) *pty.RaffleAction {
	return &pty.RaffleAction{
		Ty:    pty.RaffleActionCommitDraw,
		Value: &pty.RaffleAction_CommitDraw{CommitDraw: &pty.RaffleCommitDraw{RaffleId: id, Commitment: commitment}},
	}
}

func settleAction(id string, randomness []byte) *pty.RaffleAction {
	return &pty.RaffleAction{
		Ty:    pty.RaffleActionSettleDraw,
		Value: &pty.RaffleAction_SettleDraw{SettleDraw: &pty.RaffleSettleDraw{RaffleId: id, Randomness: randomness}},
	}
}

func claimAction(id string) *pty.RaffleAction {
	return &pty.RaffleAction{
		Ty:    pty.RaffleActionClaim,
		Value: &pty.RaffleAction_Claim{Claim: &pty.RaffleClaim{RaffleId: id}},
	}
}

func refundAction(id string) *pty.RaffleAction {
	return &pty.RaffleAction{
		Ty:    pty.RaffleActionRefund,
		Value: &pty.RaffleAction_Refund{Refund: &pty.RaffleRefund{RaffleId: id}},
	}
}

func refundAddrAction(id string, addr string) *pty.RaffleAction {
	return &pty.RaffleAction{
		Ty:    pty.RaffleActionRefund,
		Value: &pty.RaffleAction_Refund{Refund: &pty.RaffleRefund{RaffleId: id, Addr: addr}},
	}
}

func cancelAction(id string) *pty.RaffleAction {
	return &pty.RaffleAction{
		Ty:    pty.RaffleActionCancel,
		Value: &pty.RaffleAction_Cancel{Cancel: &pty.RaffleCancel{RaffleId: id}},
	}
}

type suiteRaffle struct {
	suite.Suite
	kvdb       *mocks.KVDB
	raffle     *Raffle
	execAddr   string
	raffleID   string
	randomness []byte
	commitment []byte
	nonce      int64
}

func (s *suiteRaffle) accountSetup() {
	acc := s.raffle.GetCoinsAccount()

	for _, addr := range []string{addrAuthority, addrBuyerA, addrBuyerB} {
		account := &types.Account{
			Balance: 1000 * types.DefaultCoinPrecision,
			Addr:    addr,
		}
		acc.SaveAccount(account)
		_, err := acc.TransferToExec(addr, s.execAddr, 500*types.DefaultCoinPrecision)
		s.Nil(err)
		account = acc.LoadExecAccount(addr, s.execAddr)
		s.Equal(int64(500*types.DefaultCoinPrecision), account.Balance)
	}
	//无合约内余额的账户
	acc.SaveAccount(&types.Account{Balance: 1000 * types.DefaultCoinPrecision, Addr: addrStranger})
}

func (s *suiteRaffle) SetupSuite() {
	s.kvdb = new(mocks.KVDB)
	stateDB, _ := db.NewGoMemDB("raffleTestDb", "test", 128)
	s.raffle = newTestDriver(stateDB, s.kvdb)
	s.execAddr = address.ExecAddress(pty.RaffleX)

	s.Equal("raffle", s.raffle.GetName())

	s.accountSetup()

	//取值12的随机数，8张票时中奖票号为12 mod 8 = 4
	s.randomness = make([]byte, 32)
	s.randomness[31] = 0x0c
	s.commitment = common.Sha256(s.randomness)
}

func (s *suiteRaffle) exec(action *pty.RaffleAction, priv crypto.PrivKey) (*types.Transaction, *types.Receipt, error) {
	s.nonce++
	tx := newRaffleTx(action, priv, s.nonce)
	receipt, err := s.raffle.Exec(tx, 0)
	return tx, receipt, err
}

func (s *suiteRaffle) testExecLocal(tx *types.Transaction, receipt *types.Receipt) {
	s.Equal(int32(types.ExecOk), receipt.Ty)
	rData := &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}

	set, err := s.raffle.ExecLocal(tx, rData, 0)
	s.Nil(err)

	var kv []*types.KeyValue
	for _, item := range receipt.Logs {
		switch item.Ty {
		case pty.TyLogRaffleCreate, pty.TyLogRaffleBuy, pty.TyLogRaffleCommitDraw,
			pty.TyLogRaffleSettleDraw, pty.TyLogRaffleClaim, pty.TyLogRaffleCancel:
			var rlog pty.ReceiptRaffle
			s.Nil(types.Decode(item.Log, &rlog))
			kv = append(kv, s.raffle.saveRaffleStatus(&rlog)...)
			if item.Ty == pty.TyLogRaffleBuy {
				kv = append(kv, s.raffle.saveRaffleAddr(&rlog)...)
			}
		}
	}
	s.Subset(set.KV, kv)
}

func (s *suiteRaffle) testExecDelLocal(tx *types.Transaction, receipt *types.Receipt) {
	s.Equal(int32(types.ExecOk), receipt.Ty)
	rData := &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}

	set, err := s.raffle.ExecDelLocal(tx, rData, 0)
	s.Nil(err)

	var kv []*types.KeyValue
	for _, item := range receipt.Logs {
		switch item.Ty {
		case pty.TyLogRaffleCreate, pty.TyLogRaffleBuy, pty.TyLogRaffleCommitDraw,
			pty.TyLogRaffleSettleDraw, pty.TyLogRaffleClaim, pty.TyLogRaffleCancel:
			var rlog pty.ReceiptRaffle
			s.Nil(types.Decode(item.Log, &rlog))
			kv = append(kv, s.raffle.rollbackRaffleStatus(&rlog)...)
			if item.Ty == pty.TyLogRaffleBuy {
				kv = append(kv, s.raffle.delRaffleAddr(&rlog)...)
			}
		}
	}
	s.Subset(set.KV, kv)
}

//create
func (s *suiteRaffle) TestExec_1() {
	_, _, err := s.exec(createAction("", 5*types.DefaultCoinPrecision, 5, 1000, 0), privAuthority)
	s.Equal(types.ErrInvalidParam, err)

	longName := make([]byte, pty.MaxNameLen+1)
	for i := range longName {
		longName[i] = 'a'
	}
	_, _, err = s.exec(createAction(string(longName), 5*types.DefaultCoinPrecision, 5, 1000, 0), privAuthority)
	s.Equal(pty.ErrRaffleNameTooLong, err)

	_, _, err = s.exec(createAction("weekly-grand", 0, 5, 1000, 0), privAuthority)
	s.Equal(pty.ErrRaffleInvalidTicketPrice, err)

	_, _, err = s.exec(createAction("weekly-grand", 5*types.DefaultCoinPrecision, 0, 1000, 0), privAuthority)
	s.Equal(pty.ErrRaffleInvalidMaxPerWallet, err)

	_, _, err = s.exec(createAction("weekly-grand", 5*types.DefaultCoinPrecision, 5, 50, 0), privAuthority)
	s.Equal(pty.ErrRaffleInvalidEndTime, err)

	tx, receipt, err := s.exec(createAction("weekly-grand", 5*types.DefaultCoinPrecision, 5, 1000, 0), privAuthority)
	s.Nil(err)

	s.raffleID = raffleId(addrAuthority, "weekly-grand")
	raffle, err := readRaffle(s.raffle.GetStateDB(), s.raffleID)
	s.Nil(err)
	s.Equal(int32(pty.RaffleStatusActive), raffle.Status)
	s.Equal(addrAuthority, raffle.Authority)
	s.Equal(int64(5*types.DefaultCoinPrecision), raffle.TicketPrice)
	s.Equal(int64(5), raffle.MaxPerWallet)
	s.Zero(raffle.TotalTickets)

	var rlog pty.ReceiptRaffle
	s.Nil(types.Decode(receipt.Logs[len(receipt.Logs)-1].Log, &rlog))
	s.Equal(int32(pty.RaffleStatusActive), rlog.Status)
	s.Equal(s.raffleID, rlog.RaffleId)

	s.testExecLocal(tx, receipt)
	s.testExecDelLocal(tx, receipt)

	_, _, err = s.exec(createAction("weekly-grand", 5*types.DefaultCoinPrecision, 5, 1000, 0), privAuthority)
	s.Equal(pty.ErrRaffleRepeatName, err)
}

//buy
func (s *suiteRaffle) TestExec_2() {
	s.raffle.SetEnv(20, 200, 1)

	_, _, err := s.exec(buyAction("not-a-raffle", 1), privBuyerA)
	s.Equal(types.ErrNotFound, err)

	_, _, err = s.exec(buyAction(s.raffleID, 0), privBuyerA)
	s.Equal(pty.ErrRaffleInvalidTicketNum, err)

	tx, receipt, err := s.exec(buyAction(s.raffleID, 3), privBuyerA)
	s.Nil(err)

	acc := s.raffle.GetCoinsAccount()
	escrow := acc.LoadExecAccount(escrowAddress(s.raffleID), s.execAddr)
	s.Equal(int64(15*types.DefaultCoinPrecision), escrow.Balance)
	buyer := acc.LoadExecAccount(addrBuyerA, s.execAddr)
	s.Equal(int64(485*types.DefaultCoinPrecision), buyer.Balance)

	raffle, err := readRaffle(s.raffle.GetStateDB(), s.raffleID)
	s.Nil(err)
	s.Equal(int64(3), raffle.TotalTickets)
	s.Equal(int64(15*types.DefaultCoinPrecision), raffle.TotalPot)
	s.Len(raffle.Segments, 1)
	s.Equal(addrBuyerA, raffle.Segments[0].Buyer)

	entry, err := readEntry(s.raffle.GetStateDB(), s.raffleID, addrBuyerA)
	s.Nil(err)
	s.Equal(int64(3), entry.NumTickets)
	s.Len(entry.Ranges, 1)
	s.Equal(int64(0), entry.Ranges[0].Start)
	s.Equal(int64(3), entry.Ranges[0].Count)

	s.testExecLocal(tx, receipt)
	s.testExecDelLocal(tx, receipt)
}

//buy up to the per-wallet cap
func (s *suiteRaffle) TestExec_3() {
	s.raffle.SetEnv(21, 210, 1)

	_, _, err := s.exec(buyAction(s.raffleID, 5), privBuyerB)
	s.Nil(err)

	raffle, err := readRaffle(s.raffle.GetStateDB(), s.raffleID)
	s.Nil(err)
	s.Equal(int64(8), raffle.TotalTickets)
	s.Equal(int64(40*types.DefaultCoinPrecision), raffle.TotalPot)
	s.Len(raffle.Segments, 2)

	entry, err := readEntry(s.raffle.GetStateDB(), s.raffleID, addrBuyerB)
	s.Nil(err)
	s.Equal(int64(3), entry.Ranges[0].Start)
	s.Equal(int64(5), entry.Ranges[0].Count)

	_, _, err = s.exec(buyAction(s.raffleID, 1), privBuyerB)
	s.Equal(pty.ErrRaffleMaxTicketsExceeded, err)

	_, _, err = s.exec(buyAction(s.raffleID, 1), privStranger)
	s.Equal(types.ErrNoBalance, err)
}

//commit
func (s *suiteRaffle) TestExec_4() {
	_, _, err := s.exec(commitAction(s.raffleID, s.commitment), privAuthority)
	s.Equal(pty.ErrRaffleNotEnded, err)

	s.raffle.SetEnv(30, 2000, 1)

	_, _, err = s.exec(buyAction(s.raffleID, 1), privBuyerA)
	s.Equal(pty.ErrRaffleClosed, err)

	_, _, err = s.exec(commitAction(s.raffleID, s.commitment), privStranger)
	s.Equal(pty.ErrRaffleNoPrivilege, err)

	_, _, err = s.exec(commitAction(s.raffleID, s.commitment[:16]), privAuthority)
	s.Equal(pty.ErrRaffleCommitment, err)

	tx, receipt, err := s.exec(commitAction(s.raffleID, s.commitment), privAuthority)
	s.Nil(err)

	raffle, err := readRaffle(s.raffle.GetStateDB(), s.raffleID)
	s.Nil(err)
	s.Equal(int32(pty.RaffleStatusDrawCommitted), raffle.Status)
	s.Equal(s.commitment, raffle.Commitment)

	s.testExecLocal(tx, receipt)
	s.testExecDelLocal(tx, receipt)

	_, _, err = s.exec(cancelAction(s.raffleID), privAuthority)
	s.Equal(pty.ErrRaffleCannotCancel, err)
}

//settle
func (s *suiteRaffle) TestExec_5() {
	s.raffle.SetEnv(31, 2010, 1)

	_, _, err := s.exec(settleAction(s.raffleID, s.randomness), privStranger)
	s.Equal(pty.ErrRaffleNoPrivilege, err)

	_, _, err = s.exec(settleAction(s.raffleID, nil), privAuthority)
	s.Equal(types.ErrInvalidParam, err)

	wrong := make([]byte, 32)
	wrong[0] = 0xff
	_, _, err = s.exec(settleAction(s.raffleID, wrong), privAuthority)
	s.Equal(pty.ErrRaffleRandomMismatch, err)

	tx, receipt, err := s.exec(settleAction(s.raffleID, s.randomness), privAuthority)
	s.Nil(err)

	raffle, err := readRaffle(s.raffle.GetStateDB(), s.raffleID)
	s.Nil(err)
	s.Equal(int32(pty.RaffleStatusDrawComplete), raffle.Status)
	s.Equal(s.randomness, raffle.Randomness)
	s.Equal(int64(4), raffle.WinningTicket)

	s.testExecLocal(tx, receipt)
	s.testExecDelLocal(tx, receipt)
}

//claim
func (s *suiteRaffle) TestExec_6() {
	s.raffle.SetEnv(32, 2020, 1)

	_, _, err := s.exec(claimAction(s.raffleID), privBuyerA)
	s.Equal(pty.ErrRaffleNotWinner, err)

	_, _, err = s.exec(claimAction(s.raffleID), privStranger)
	s.Equal(pty.ErrRaffleNotWinner, err)

	tx, receipt, err := s.exec(claimAction(s.raffleID), privBuyerB)
	s.Nil(err)

	var rlog pty.ReceiptRaffle
	s.Nil(types.Decode(receipt.Logs[len(receipt.Logs)-1].Log, &rlog))
	s.Equal(int64(36*types.DefaultCoinPrecision), rlog.Amount)
	s.Equal(int64(4*types.DefaultCoinPrecision), rlog.Fee)
	s.Equal(addrBuyerB, rlog.Winner)
	s.Equal(int64(4), rlog.WinningTicket)

	acc := s.raffle.GetCoinsAccount()
	escrow := acc.LoadExecAccount(escrowAddress(s.raffleID), s.execAddr)
	s.Zero(escrow.Balance)
	winner := acc.LoadExecAccount(addrBuyerB, s.execAddr)
	s.Equal(int64(511*types.DefaultCoinPrecision), winner.Balance)
	feeAcc := acc.LoadExecAccount(s.execAddr, s.execAddr)
	s.Equal(int64(4*types.DefaultCoinPrecision), feeAcc.Balance)

	raffle, err := readRaffle(s.raffle.GetStateDB(), s.raffleID)
	s.Nil(err)
	s.Equal(int32(pty.RaffleStatusClaimed), raffle.Status)
	s.Equal(addrBuyerB, raffle.Winner)

	s.testExecLocal(tx, receipt)
	s.testExecDelLocal(tx, receipt)

	_, _, err = s.exec(claimAction(s.raffleID), privBuyerB)
	s.Equal(pty.ErrRaffleStatus, err)
	_, _, err = s.exec(refundAction(s.raffleID), privBuyerA)
	s.Equal(pty.ErrRaffleStatus, err)
	_, _, err = s.exec(cancelAction(s.raffleID), privAuthority)
	s.Equal(pty.ErrRaffleCannotCancel, err)
}

func TestRunSuiteRaffle(t *testing.T) {
	suite.Run(t, new(suiteRaffle))
}

type suiteRaffleRefund struct {
	suite.Suite
	kvdb     *mocks.KVDB
	raffle   *Raffle
	execAddr string
	raffleID string
	nonce    int64
}

func (s *suiteRaffleRefund) SetupSuite() {
	s.kvdb = new(mocks.KVDB)
	stateDB, _ := db.NewGoMemDB("raffleRefundTestDb", "test", 128)
	s.raffle = newTestDriver(stateDB, s.kvdb)
	s.execAddr = address.ExecAddress(pty.RaffleX)

	acc := s.raffle.GetCoinsAccount()
	for _, addr := range []string{addrAuthority, addrBuyerA} {
		acc.SaveAccount(&types.Account{Balance: 1000 * types.DefaultCoinPrecision, Addr: addr})
		_, err := acc.TransferToExec(addr, s.execAddr, 500*types.DefaultCoinPrecision)
		s.Nil(err)
	}
}

func (s *suiteRaffleRefund) exec(action *pty.RaffleAction, priv crypto.PrivKey) (*types.Transaction, *types.Receipt, error) {
	s.nonce++
	tx := newRaffleTx(action, priv, s.nonce)
	receipt, err := s.raffle.Exec(tx, 0)
	return tx, receipt, err
}

//create and fill, then cancel
func (s *suiteRaffleRefund) TestExec_1() {
	_, _, err := s.exec(createAction("refund-round", 5*types.DefaultCoinPrecision, 10, 1000, 0), privAuthority)
	s.Nil(err)
	s.raffleID = raffleId(addrAuthority, "refund-round")

	s.raffle.SetEnv(20, 200, 1)
	_, _, err = s.exec(buyAction(s.raffleID, 6), privBuyerA)
	s.Nil(err)

	acc := s.raffle.GetCoinsAccount()
	escrow := acc.LoadExecAccount(escrowAddress(s.raffleID), s.execAddr)
	s.Equal(int64(30*types.DefaultCoinPrecision), escrow.Balance)

	_, _, err = s.exec(refundAction(s.raffleID), privBuyerA)
	s.Equal(pty.ErrRaffleStatus, err)

	//非管理地址无权取消
	_, _, err = s.exec(cancelAction(s.raffleID), privStranger)
	s.Equal(pty.ErrRaffleCannotCancel, err)

	tx, receipt, err := s.exec(cancelAction(s.raffleID), privAuthority)
	s.Nil(err)

	raffle, err := readRaffle(s.raffle.GetStateDB(), s.raffleID)
	s.Nil(err)
	s.Equal(int32(pty.RaffleStatusCancelled), raffle.Status)

	rData := &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}
	set, err := s.raffle.ExecLocal(tx, rData, 0)
	s.Nil(err)
	var rlog pty.ReceiptRaffle
	s.Nil(types.Decode(receipt.Logs[len(receipt.Logs)-1].Log, &rlog))
	s.Subset(set.KV, s.raffle.saveRaffleStatus(&rlog))

	_, _, err = s.exec(buyAction(s.raffleID, 1), privBuyerA)
	s.Equal(pty.ErrRaffleStatus, err)
	_, _, err = s.exec(commitAction(s.raffleID, make([]byte, 32)), privAuthority)
	s.Equal(pty.ErrRaffleStatus, err)
}

//refund, processed by the authority on the buyer's behalf
func (s *suiteRaffleRefund) TestExec_2() {
	s.raffle.SetEnv(21, 210, 1)

	_, _, err := s.exec(refundAction(s.raffleID), privBuyerB)
	s.Equal(pty.ErrRaffleNoEntry, err)

	//只有管理地址可以代他人退款
	_, _, err = s.exec(refundAddrAction(s.raffleID, addrBuyerA), privStranger)
	s.Equal(pty.ErrRaffleNoPrivilege, err)

	tx, receipt, err := s.exec(refundAddrAction(s.raffleID, addrBuyerA), privAuthority)
	s.Nil(err)

	var rlog pty.ReceiptRaffle
	s.Nil(types.Decode(receipt.Logs[len(receipt.Logs)-1].Log, &rlog))
	s.Equal(int64(27*types.DefaultCoinPrecision), rlog.Amount)
	s.Equal(int64(3*types.DefaultCoinPrecision), rlog.Fee)
	s.Equal(int64(6), rlog.NumTickets)
	s.Equal(addrBuyerA, rlog.Addr)

	//款项退给买家本人，而不是发起交易的管理地址
	acc := s.raffle.GetCoinsAccount()
	escrow := acc.LoadExecAccount(escrowAddress(s.raffleID), s.execAddr)
	s.Zero(escrow.Balance)
	buyer := acc.LoadExecAccount(addrBuyerA, s.execAddr)
	s.Equal(int64(497*types.DefaultCoinPrecision), buyer.Balance)
	feeAcc := acc.LoadExecAccount(s.execAddr, s.execAddr)
	s.Equal(int64(3*types.DefaultCoinPrecision), feeAcc.Balance)

	entry, err := readEntry(s.raffle.GetStateDB(), s.raffleID, addrBuyerA)
	s.Nil(err)
	s.True(entry.Refunded)

	//退款不改变抽奖状态，本地索引不动
	rData := &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}
	set, err := s.raffle.ExecLocal(tx, rData, 0)
	s.Nil(err)
	s.Empty(set.KV)

	_, _, err = s.exec(refundAction(s.raffleID), privBuyerA)
	s.Equal(pty.ErrRaffleAlreadyRefunded, err)
}

func TestRunSuiteRaffleRefund(t *testing.T) {
	suite.Run(t, new(suiteRaffleRefund))
}

type suiteRaffleGuards struct {
	suite.Suite
	kvdb     *mocks.KVDB
	raffle   *Raffle
	execAddr string
	nonce    int64
}

func (s *suiteRaffleGuards) SetupSuite() {
	s.kvdb = new(mocks.KVDB)
	stateDB, _ := db.NewGoMemDB("raffleGuardsTestDb", "test", 128)
	s.raffle = newTestDriver(stateDB, s.kvdb)
	s.execAddr = address.ExecAddress(pty.RaffleX)

	acc := s.raffle.GetCoinsAccount()
	for _, addr := range []string{addrAuthority, addrBuyerA} {
		acc.SaveAccount(&types.Account{Balance: 1000 * types.DefaultCoinPrecision, Addr: addr})
		_, err := acc.TransferToExec(addr, s.execAddr, 500*types.DefaultCoinPrecision)
		s.Nil(err)
	}
}

func (s *suiteRaffleGuards) exec(action *pty.RaffleAction, priv crypto.PrivKey) (*types.Transaction, *types.Receipt, error) {
	s.nonce++
	tx := newRaffleTx(action, priv, s.nonce)
	receipt, err := s.raffle.Exec(tx, 0)
	return tx, receipt, err
}

func (s *suiteRaffleGuards) TestCommitNoTickets() {
	s.raffle.SetEnv(10, 100, 1)
	_, _, err := s.exec(createAction("empty-house", 5*types.DefaultCoinPrecision, 10, 1000, 0), privAuthority)
	s.Nil(err)
	id := raffleId(addrAuthority, "empty-house")

	s.raffle.SetEnv(30, 2000, 1)
	_, _, err = s.exec(commitAction(id, make([]byte, 32)), privAuthority)
	s.Equal(pty.ErrRaffleNoTickets, err)
}

//minPot仅作参考信息，奖池未达标不阻止开奖
func (s *suiteRaffleGuards) TestCommitPotBelowMinPot() {
	s.raffle.SetEnv(11, 110, 1)
	_, _, err := s.exec(createAction("big-stakes", 5*types.DefaultCoinPrecision, 10, 1000, 100*types.DefaultCoinPrecision), privAuthority)
	s.Nil(err)
	id := raffleId(addrAuthority, "big-stakes")

	s.raffle.SetEnv(20, 200, 1)
	_, _, err = s.exec(buyAction(id, 1), privBuyerA)
	s.Nil(err)

	s.raffle.SetEnv(30, 2000, 1)
	_, _, err = s.exec(commitAction(id, make([]byte, 32)), privAuthority)
	s.Nil(err)

	raffle, err := readRaffle(s.raffle.GetStateDB(), id)
	s.Nil(err)
	s.Equal(int32(pty.RaffleStatusDrawCommitted), raffle.Status)
	s.True(raffle.TotalPot < raffle.MinPot)
}

func TestRunSuiteRaffleGuards(t *testing.T) {
	suite.Run(t, new(suiteRaffleGuards))
}
