// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adex

import (
	"github.com/emer/emergent/erand"
	"github.com/emer/emergent/prjn"
	"github.com/emer/etable/etensor"
	"github.com/goki/ki/kit"
)

///////////////////////////////////////////////////////////////////////
//  prjn.go contains sparse random connectivity generation and the
//  fixed-weight spike-delivery projections between populations

// SynChans are the postsynaptic current channels a projection can target.
type SynChans int

//go:generate stringer -type=SynChans

var KiT_SynChans = kit.Enums.AddEnum(SynChansN, kit.NotBitFlag, nil)

const (
	// Exc targets the excitatory synaptic current IExc
	Exc SynChans = iota

	// Inh targets the inhibitory synaptic current IInh
	Inh

	SynChansN
)

//////////////////////////////////////////////////////////////////////////////////////
//  Bernoulli

// Bernoulli is a connectivity pattern where each ordered (sending, receiving)
// unit pair is connected independently with probability PCon.  When the
// sending and receiving layers are the same, self-connections are excluded
// unless SelfCon is set, as recurrent projections model distinct synaptic
// contacts.  Implements the prjn.Pattern interface.
// The realized topology is drawn from the global random source, so it is only
// reproducible if the caller seeds math/rand.
type Bernoulli struct {
	PCon    float32 `min:"0" max:"1" desc:"probability of connection for each ordered unit pair"`
	SelfCon bool    `desc:"include self-connections when the sending and receiving layers are the same"`
}

// NewBernoulli returns a new Bernoulli pattern with given connection probability
func NewBernoulli(pcon float32) *Bernoulli {
	return &Bernoulli{PCon: pcon}
}

func (br *Bernoulli) Name() string {
	return "Bernoulli"
}

func (br *Bernoulli) Connect(send, recv *etensor.Shape, same bool) (sendn, recvn *etensor.Int32, cons *etensor.Bits) {
	sendn, recvn, cons = prjn.NewTensors(send, recv)
	slen := send.Len()
	rlen := recv.Len()
	snv := sendn.Values
	rnv := recvn.Values
	for ri := 0; ri < rlen; ri++ {
		for si := 0; si < slen; si++ {
			if same && !br.SelfCon && ri == si {
				continue
			}
			if !erand.BoolP(float64(br.PCon), -1) {
				continue
			}
			cons.Values.Set(ri*slen+si, true)
			rnv[ri]++
			snv[si]++
		}
	}
	return
}

//////////////////////////////////////////////////////////////////////////////////////
//  Prjn

// adex.Prjn is a sparse directed projection from a sending to a receiving
// population.  Every realized edge carries the same fixed weight and targets
// the same channel.  The edge set is generated once by Build and is immutable
// until the next Setup.
type Prjn struct {
	Send *Pop         `desc:"sending population"`
	Recv *Pop         `desc:"receiving population"`
	Pat  prjn.Pattern `desc:"pattern of connectivity, realized at Build"`
	Chan SynChans     `desc:"target channel on the receiving units"`
	Wt   float32      `desc:"synaptic weight: current in pA added to the target channel per presynaptic spike"`

	SConN     []int32 `view:"-" desc:"number of receiving units each sending unit connects to"`
	SConIdxSt []int32 `view:"-" desc:"starting offset of each sending unit's edges in SConIdx"`
	SConIdx   []int32 `view:"-" desc:"receiving unit indexes, grouped by sending unit"`
}

// NewPrjn returns a new projection between the given populations
func NewPrjn(send, recv *Pop, pat prjn.Pattern, ch SynChans, wt float32) *Prjn {
	return &Prjn{Send: send, Recv: recv, Pat: pat, Chan: ch, Wt: wt}
}

// Build realizes the connectivity from the pattern into compact per-sender
// edge lists.  Always succeeds: an empty sending or receiving population
// yields an empty edge set.
func (pj *Prjn) Build() {
	slen := len(pj.Send.Neurons)
	rlen := len(pj.Recv.Neurons)
	pj.SConN = make([]int32, slen)
	pj.SConIdxSt = make([]int32, slen)
	pj.SConIdx = nil
	if slen == 0 || rlen == 0 {
		return
	}
	var ssh, rsh etensor.Shape
	ssh.SetShape([]int{slen}, nil, []string{"Units"})
	rsh.SetShape([]int{rlen}, nil, []string{"Units"})
	sendn, _, cons := pj.Pat.Connect(&ssh, &rsh, pj.Send == pj.Recv)
	tcons := int32(0)
	for si := 0; si < slen; si++ {
		pj.SConIdxSt[si] = tcons
		pj.SConN[si] = sendn.Values[si]
		tcons += sendn.Values[si]
	}
	pj.SConIdx = make([]int32, tcons)
	cbits := cons.Values
	idx := 0
	for si := 0; si < slen; si++ {
		for ri := 0; ri < rlen; ri++ {
			if !cbits.Index(ri*slen + si) {
				continue
			}
			pj.SConIdx[idx] = int32(ri)
			idx++
		}
	}
}

// NCons returns the total number of realized edges
func (pj *Prjn) NCons() int {
	return len(pj.SConIdx)
}

// Deliver adds the projection weight into the target channel of every
// receiving unit connected to a sending unit that spiked on the previous
// cycle.  Called at the start of each cycle, before integration.
func (pj *Prjn) Deliver() {
	for si := range pj.Send.Neurons {
		if pj.Send.Neurons[si].Spike == 0 {
			continue
		}
		st := pj.SConIdxSt[si]
		n := pj.SConN[si]
		if pj.Chan == Inh {
			for ci := int32(0); ci < n; ci++ {
				pj.Recv.Neurons[pj.SConIdx[st+ci]].IInh += pj.Wt
			}
		} else {
			for ci := int32(0); ci < n; ci++ {
				pj.Recv.Neurons[pj.SConIdx[st+ci]].IExc += pj.Wt
			}
		}
	}
}

// String satisfies fmt.Stringer for error / debug messages
func (pj *Prjn) String() string {
	return pj.Send.Name + "To" + pj.Recv.Name
}
